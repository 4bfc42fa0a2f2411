package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hostel-backend/config"
)

// Roles carried in the token's "role" claim.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken creates a signed JWT for the given principal.
func GenerateToken(subjectID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(subjectID),
		"role": role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates a bearer token and returns the subject id and role.
func ParseToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return uint(sub), role, nil
}
