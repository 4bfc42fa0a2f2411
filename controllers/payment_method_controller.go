package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

// ListPaymentMethods (GET /api/payment-method) — public; only active
// methods unless ?all=true.
func ListPaymentMethods(c *gin.Context) {
	q := config.DB.Order("name ASC")
	if c.Query("all") != "true" {
		q = q.Where("active = ?", true)
	}

	var methods []models.PaymentMethod
	if err := q.Find(&methods).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payment methods")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, methods)
}

// CreatePaymentMethod (POST /api/payment-method)
func CreatePaymentMethod(c *gin.Context) {
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	method.Name = strings.TrimSpace(method.Name)
	if method.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := config.DB.Create(&method).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "payment method already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment method")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, method)
}

// UpdatePaymentMethod (PUT /api/payment-method/:id)
func UpdatePaymentMethod(c *gin.Context) {
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
	if v, ok := patch["accountName"]; ok {
		patch["account_name"] = v
		delete(patch, "accountName")
	}
	if v, ok := patch["accountNo"]; ok {
		patch["account_no"] = v
		delete(patch, "accountNo")
	}

	res := config.DB.Model(&models.PaymentMethod{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update payment method")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "payment method not found")
		return
	}

	var method models.PaymentMethod
	config.DB.First(&method, id)
	utils.JSONSuccess(c, http.StatusOK, method)
}

// DeletePaymentMethod (DELETE /api/payment-method/:id)
func DeletePaymentMethod(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result := config.DB.Where("id = ?", id).Delete(&models.PaymentMethod{})
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete payment method")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "payment method not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
