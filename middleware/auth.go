package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/utils"
)

// Context keys set by AuthRequired.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// AuthRequired verifies the bearer token and stores the principal in
// the gin context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authorization header required"})
			return
		}

		id, role, err := utils.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, id)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// AdminRequired must be used AFTER AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}
		c.Next()
	}
}

// StudentRequired must be used AFTER AuthRequired.
func StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists || role != utils.RoleStudent {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "student access required"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated principal's id, or 0.
func CurrentUserID(c *gin.Context) uint {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0
	}
	id, _ := v.(uint)
	return id
}
