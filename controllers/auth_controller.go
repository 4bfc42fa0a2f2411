package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type studentLoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

// Login (POST /api/auth/login) — admin login, returns a bearer token.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID, utils.RoleAdmin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"full_name": admin.FullName,
			"username":  admin.Username,
		},
	})
}

// StudentLogin (POST /api/auth/student/login)
func StudentLogin(c *gin.Context) {
	var payload studentLoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var student models.Student
	if err := config.DB.Where("email = ?", email).First(&student).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(student.ID, utils.RoleStudent)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"student": gin.H{
			"id":       student.ID,
			"fullName": student.FullName,
			"email":    student.Email,
		},
	})
}

// ForgotPassword (POST /api/auth/forgot) stores a reset token; the
// response never reveals whether the account exists.
func ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", email).First(&admin).Error; err == nil {
		token, err := utils.GenerateSecureToken(24)
		if err == nil {
			expiry := time.Now().Add(1 * time.Hour)
			config.DB.Model(&admin).Updates(map[string]any{
				"reset_token":         token,
				"reset_token_expires": expiry,
			})
		}
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "If this email exists, a reset link was sent."})
}
