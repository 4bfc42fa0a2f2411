package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type HostelController struct {
	Hostels *services.HostelService
}

func NewHostelController(svc *services.HostelService) *HostelController {
	return &HostelController{Hostels: svc}
}

// ListHostels (GET /api/hostel)
func (ctrl *HostelController) ListHostels(c *gin.Context) {
	hostels, err := ctrl.Hostels.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hostels)
}

// GetHostel (GET /api/hostel/:id)
func (ctrl *HostelController) GetHostel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	hostel, err := ctrl.Hostels.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hostel)
}

// CreateHostel (POST /api/hostel)
func (ctrl *HostelController) CreateHostel(c *gin.Context) {
	var hostel models.Hostel
	if err := c.ShouldBindJSON(&hostel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.Hostels.Create(&hostel); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "hostel name already exists")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hostel)
}

// UpdateHostel (PUT /api/hostel/:id)
func (ctrl *HostelController) UpdateHostel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hostel, err := ctrl.Hostels.Update(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hostel)
}

// DeleteHostel (DELETE /api/hostel/:id)
func (ctrl *HostelController) DeleteHostel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Hostels.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
