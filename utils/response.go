package utils

import "github.com/gin-gonic/gin"

// Every endpoint speaks the same envelope: {"success": true, "data": ...}
// on the happy path, {"success": false, "error": "..."} otherwise.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
