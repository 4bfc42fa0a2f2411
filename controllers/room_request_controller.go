package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type RoomRequestController struct {
	Requests *services.RoomRequestService
}

func NewRoomRequestController(svc *services.RoomRequestService) *RoomRequestController {
	return &RoomRequestController{Requests: svc}
}

type createRequestPayload struct {
	RoomID uint `json:"roomId" binding:"required"`
	Bed    *int `json:"bed" binding:"required"`
}

// CreateRequest (POST /api/room/requests) — student asks for a bed.
// The student id comes from the token, not the body.
func (ctrl *RoomRequestController) CreateRequest(c *gin.Context) {
	var payload createRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and bed are required")
		return
	}

	studentID := middleware.CurrentUserID(c)
	if studentID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	req, err := ctrl.Requests.Create(studentID, payload.RoomID, *payload.Bed)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

// ListRequests (GET /api/room/requests?status=pending) — admin view.
func (ctrl *RoomRequestController) ListRequests(c *gin.Context) {
	list, err := ctrl.Requests.ListAll(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if search := c.Query("search"); search != "" {
		list = services.FilterRequests(list, "", search)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": list})
}

// DecideRequest (POST /api/room/requests/:id?action=approve|decline)
func (ctrl *RoomRequestController) DecideRequest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var (
		req interface{}
		err error
	)
	switch c.Query("action") {
	case "approve":
		req, err = ctrl.Requests.Approve(id)
	case "decline":
		req, err = ctrl.Requests.Decline(id)
	default:
		utils.JSONError(c, http.StatusBadRequest, "action must be approve or decline")
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

// MyRequests (GET /api/room/my-requests) — the authenticated student's
// own requests.
func (ctrl *RoomRequestController) MyRequests(c *gin.Context) {
	studentID := middleware.CurrentUserID(c)
	if studentID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	list, err := ctrl.Requests.ListForStudent(studentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": list})
}

// StudentRequests (GET /api/room/student-requests/:studentId) — admin
// view of one student's requests.
func (ctrl *RoomRequestController) StudentRequests(c *gin.Context) {
	raw := c.Param("studentId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid studentId")
		return
	}

	list, err := ctrl.Requests.ListForStudent(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requests": list})
}
