package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateSecureToken returns a hex token (length = bytes of entropy).
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateReceiptRef builds a donation receipt reference like
// "DN-1B9D6BCD". Uniqueness is backed by the DB index; the uuid prefix
// keeps collisions practically impossible.
func GenerateReceiptRef() string {
	id := uuid.NewString()
	return fmt.Sprintf("DN-%s", strings.ToUpper(id[:8]))
}
