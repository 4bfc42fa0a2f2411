package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type createContactPayload struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

type respondContactPayload struct {
	Response string `json:"response" binding:"required"`
}

// CreateContactMessage (POST /api/contact) — public contact form.
func CreateContactMessage(c *gin.Context) {
	var payload createContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email and body are required")
		return
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Subject: strings.TrimSpace(payload.Subject),
		Body:    payload.Body,
	}

	if err := config.DB.Create(&msg).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save message")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, msg)
}

// ListContactMessages (GET /api/contact?responded=false) — admin.
func ListContactMessages(c *gin.Context) {
	q := config.DB.Order("created_at DESC")
	switch c.Query("responded") {
	case "true":
		q = q.Where("responded = ?", true)
	case "false":
		q = q.Where("responded = ?", false)
	}

	var messages []models.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list messages")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, messages)
}

// RespondContactMessage (POST /api/contact/:id/respond) — admin records
// a response; messages are responded to at most once.
func RespondContactMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload respondContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "response is required")
		return
	}

	var msg models.ContactMessage
	if err := config.DB.First(&msg, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "message not found")
		return
	}
	if msg.Responded {
		utils.JSONError(c, http.StatusConflict, "message already responded to")
		return
	}

	now := time.Now().UTC()
	if err := config.DB.Model(&msg).Updates(map[string]interface{}{
		"responded":    true,
		"response":     payload.Response,
		"responded_at": now,
	}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save response")
		return
	}
	msg.Responded = true
	msg.Response = payload.Response
	msg.RespondedAt = &now
	utils.JSONSuccess(c, http.StatusOK, msg)
}

// DeleteContactMessage (DELETE /api/contact/:id)
func DeleteContactMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.ContactMessage{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete message")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "message not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
