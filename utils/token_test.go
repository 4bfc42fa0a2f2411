package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/config"
)

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the byte count

	_, err = hex.DecodeString(token)
	assert.NoError(t, err)

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestGenerateReceiptRef(t *testing.T) {
	ref := GenerateReceiptRef()
	assert.True(t, strings.HasPrefix(ref, "DN-"))
	assert.Len(t, ref, 11)
	assert.Equal(t, strings.ToUpper(ref), ref)
}

func TestJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateToken(42, RoleStudent)
	require.NoError(t, err)

	id, role, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, RoleStudent, role)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateToken(42, RoleAdmin)
	require.NoError(t, err)

	_, _, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// token signed with a different secret
	config.AppConfig = &config.Config{JWTSecret: "other-secret"}
	_, _, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
