package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	return strings.Trim(s, "-")
}

// ListPosts (GET /api/blog) — public; only published posts unless
// ?all=true (admin screens pass it behind auth).
func ListPosts(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	if c.Query("all") != "true" {
		q = q.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list posts")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, posts)
}

// GetPost (GET /api/blog/:slug)
func GetPost(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	if err := config.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "post not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, post)
}

// CreatePost (POST /api/blog)
func CreatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	if post.Published && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := config.DB.Create(&post).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create post")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, post)
}

// UpdatePost (PUT /api/blog/:id)
func UpdatePost(c *gin.Context) {
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
	if v, ok := patch["coverUrl"]; ok {
		patch["cover_url"] = v
		delete(patch, "coverUrl")
	}
	// first publish stamps published_at
	if v, ok := patch["published"]; ok {
		if b, isBool := v.(bool); isBool && b {
			patch["published_at"] = time.Now().UTC()
		}
	}

	res := config.DB.Model(&models.BlogPost{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update post")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "post not found")
		return
	}

	var post models.BlogPost
	config.DB.First(&post, id)
	utils.JSONSuccess(c, http.StatusOK, post)
}

// DeletePost (DELETE /api/blog/:id)
func DeletePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "post not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
