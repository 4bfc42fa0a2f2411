package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

// GetHeroContent (GET /api/content/hero) lazily creates the singleton
// row so the welcome page always has something to render.
func GetHeroContent(c *gin.Context) {
	var hero models.HeroContent
	if err := config.DB.First(&hero).Error; err != nil {
		hero = models.HeroContent{Heading: "Welcome"}
		if err := config.DB.Create(&hero).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load hero content")
			return
		}
	}
	utils.JSONSuccess(c, http.StatusOK, hero)
}

// UpdateHeroContent (PUT /api/content/hero)
func UpdateHeroContent(c *gin.Context) {
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
	if v, ok := patch["buttonText"]; ok {
		patch["button_text"] = v
		delete(patch, "buttonText")
	}
	if v, ok := patch["buttonLink"]; ok {
		patch["button_link"] = v
		delete(patch, "buttonLink")
	}

	var hero models.HeroContent
	if err := config.DB.First(&hero).Error; err != nil {
		hero = models.HeroContent{}
		if err := config.DB.Create(&hero).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load hero content")
			return
		}
	}

	if err := config.DB.Model(&hero).Updates(patch).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update hero content")
		return
	}
	config.DB.First(&hero, hero.ID)
	utils.JSONSuccess(c, http.StatusOK, hero)
}

// ListSlides (GET /api/content/sliders) — public; active slides in
// display order unless ?all=true.
func ListSlides(c *gin.Context) {
	q := config.DB.Order("position ASC")
	if c.Query("all") != "true" {
		q = q.Where("active = ?", true)
	}

	var slides []models.MessageSlide
	if err := q.Find(&slides).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list slides")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slides)
}

// CreateSlide (POST /api/content/sliders)
func CreateSlide(c *gin.Context) {
	var slide models.MessageSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if slide.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "text is required")
		return
	}

	if err := config.DB.Create(&slide).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create slide")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, slide)
}

// UpdateSlide (PUT /api/content/sliders/:id)
func UpdateSlide(c *gin.Context) {
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

	res := config.DB.Model(&models.MessageSlide{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update slide")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "slide not found")
		return
	}

	var slide models.MessageSlide
	config.DB.First(&slide, id)
	utils.JSONSuccess(c, http.StatusOK, slide)
}

// DeleteSlide (DELETE /api/content/sliders/:id)
func DeleteSlide(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.MessageSlide{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete slide")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "slide not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
