package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

// ListGalleryItems (GET /api/gallery)
func ListGalleryItems(c *gin.Context) {
	var items []models.GalleryItem
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list gallery items")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// CreateGalleryItem (POST /api/gallery) — stores the URL of an already
// hosted image; uploads happen elsewhere.
func CreateGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	item.ImageURL = strings.TrimSpace(item.ImageURL)
	if item.ImageURL == "" {
		utils.JSONError(c, http.StatusBadRequest, "imageUrl is required")
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create gallery item")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

// UpdateGalleryItem (PUT /api/gallery/:id)
func UpdateGalleryItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	for _, f := range []string{"id", "ID", "created_at", "updated_at", "deleted_at"} {
		delete(patch, f)
	}
	if v, ok := patch["imageUrl"]; ok {
		patch["image_url"] = v
		delete(patch, "imageUrl")
	}

	res := config.DB.Model(&models.GalleryItem{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update gallery item")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "gallery item not found")
		return
	}

	var item models.GalleryItem
	config.DB.First(&item, id)
	utils.JSONSuccess(c, http.StatusOK, item)
}

// DeleteGalleryItem (DELETE /api/gallery/:id)
func DeleteGalleryItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.GalleryItem{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete gallery item")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "gallery item not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
