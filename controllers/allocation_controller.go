package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type AllocationController struct {
	Allocations *services.AllocationService
}

func NewAllocationController(svc *services.AllocationService) *AllocationController {
	return &AllocationController{Allocations: svc}
}

type assignPayload struct {
	RoomID    uint `json:"roomId" binding:"required"`
	StudentID uint `json:"studentId" binding:"required"`
	// Optional explicit bed index; when absent the lowest free bed is
	// used, matching the legacy assign button.
	Bed *int `json:"bed,omitempty"`
}

type unassignPayload struct {
	RoomID    uint `json:"roomId" binding:"required"`
	StudentID uint `json:"studentId" binding:"required"`
}

type allocatePayload struct {
	RequestID uint `json:"requestId" binding:"required"`
}

// AssignStudent (POST /api/room/assign)
func (ctrl *AllocationController) AssignStudent(c *gin.Context) {
	var payload assignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and studentId are required")
		return
	}

	bed := services.AnyBed
	if payload.Bed != nil {
		bed = *payload.Bed
	}

	room, err := ctrl.Allocations.AssignStudent(payload.RoomID, payload.StudentID, bed)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// UnassignStudent (POST /api/room/unassign)
func (ctrl *AllocationController) UnassignStudent(c *gin.Context) {
	var payload unassignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and studentId are required")
		return
	}

	room, err := ctrl.Allocations.UnassignStudent(payload.RoomID, payload.StudentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Allocate (POST /api/room/allocate) approves the request and assigns
// the bed in one transaction.
func (ctrl *AllocationController) Allocate(c *gin.Context) {
	var payload allocatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "requestId is required")
		return
	}

	req, err := ctrl.Allocations.Allocate(payload.RequestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

// Reconcile (POST /api/room/:id/reconcile) repairs a room whose
// occupancy counter drifted from its assignment rows.
func (ctrl *AllocationController) Reconcile(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result, err := ctrl.Allocations.Reconcile(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
