package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type createDonationPayload struct {
	DonorName       string  `json:"donorName" binding:"required"`
	DonorEmail      string  `json:"donorEmail"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Currency        string  `json:"currency"`
	Message         string  `json:"message"`
	PaymentMethodID *uint   `json:"paymentMethodId"`
}

// CreateDonation (POST /api/donation) — public; returns the generated
// receipt reference.
func CreateDonation(c *gin.Context) {
	var payload createDonationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "donorName and a positive amount are required")
		return
	}

	if payload.PaymentMethodID != nil {
		var pm models.PaymentMethod
		if err := config.DB.First(&pm, *payload.PaymentMethodID).Error; err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid paymentMethodId")
			return
		}
	}

	donation := models.Donation{
		DonorName:       strings.TrimSpace(payload.DonorName),
		DonorEmail:      strings.TrimSpace(payload.DonorEmail),
		Amount:          payload.Amount,
		Currency:        payload.Currency,
		Message:         payload.Message,
		PaymentMethodID: payload.PaymentMethodID,
		ReceiptRef:      utils.GenerateReceiptRef(),
	}
	if donation.Currency == "" {
		donation.Currency = "USD"
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record donation")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, donation)
}

// ListDonations (GET /api/donation) — admin.
func ListDonations(c *gin.Context) {
	var donations []models.Donation
	if err := config.DB.Preload("PaymentMethod").
		Order("created_at DESC").Find(&donations).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list donations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, donations)
}

// DeleteDonation (DELETE /api/donation/:id) — admin.
func DeleteDonation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.Donation{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete donation")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "donation not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
