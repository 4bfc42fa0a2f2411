package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type createComplaintPayload struct {
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category"`
}

type resolveComplaintPayload struct {
	AdminResponse string `json:"adminResponse" binding:"required"`
}

// CreateComplaint (POST /api/complaint) — student files a complaint.
func CreateComplaint(c *gin.Context) {
	var payload createComplaintPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "subject and body are required")
		return
	}

	studentID := middleware.CurrentUserID(c)
	complaint := models.Complaint{
		Subject:  strings.TrimSpace(payload.Subject),
		Body:     payload.Body,
		Category: payload.Category,
		Status:   models.ComplaintStatusOpen,
	}
	if studentID != 0 {
		complaint.StudentID = &studentID
	}

	if err := config.DB.Create(&complaint).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create complaint")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, complaint)
}

// ListComplaints (GET /api/complaint?status=open) — admin view.
func ListComplaints(c *gin.Context) {
	q := config.DB.Preload("Student").Order("created_at DESC")
	if status := c.Query("status"); status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list complaints")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaints)
}

// MyComplaints (GET /api/complaint/mine) — the student's own.
func MyComplaints(c *gin.Context) {
	studentID := middleware.CurrentUserID(c)
	if studentID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var complaints []models.Complaint
	if err := config.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&complaints).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list complaints")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaints)
}

// ResolveComplaint (POST /api/complaint/:id/resolve) — admin responds
// and closes. Already-resolved complaints are left alone.
func ResolveComplaint(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload resolveComplaintPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "adminResponse is required")
		return
	}

	var complaint models.Complaint
	if err := config.DB.First(&complaint, id).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "complaint not found")
		return
	}
	if complaint.Status == models.ComplaintStatusResolved {
		utils.JSONError(c, http.StatusConflict, "complaint already resolved")
		return
	}

	now := time.Now().UTC()
	if err := config.DB.Model(&complaint).Updates(map[string]interface{}{
		"status":         models.ComplaintStatusResolved,
		"admin_response": payload.AdminResponse,
		"resolved_at":    now,
	}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve complaint")
		return
	}
	complaint.Status = models.ComplaintStatusResolved
	complaint.AdminResponse = payload.AdminResponse
	complaint.ResolvedAt = &now
	utils.JSONSuccess(c, http.StatusOK, complaint)
}
