package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type createAdminPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// GetAdmins (GET /api/admins)
func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Order("created_at DESC").Find(&admins).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list admins")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

// CreateAdmin (POST /api/admins)
func CreateAdmin(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "full_name, username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(payload.FullName),
		Username: strings.TrimSpace(payload.Username),
		Password: string(hash),
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "username already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create admin")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

// DeleteAdmin (DELETE /api/admins/:id) — the last admin cannot be
// removed.
func DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var count int64
	config.DB.Model(&models.Admin{}).Count(&count)
	if count <= 1 {
		utils.JSONError(c, http.StatusConflict, "cannot delete the last admin")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Admin{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete admin")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "admin not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
