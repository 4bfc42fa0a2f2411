package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/room)
// ----------------------------------------------------

func (ctrl *RoomController) ListRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Block:  strings.TrimSpace(c.Query("block")),
		Floor:  strings.TrimSpace(c.Query("floor")),
		Status: strings.TrimSpace(c.Query("status")),
	}
	if raw := c.Query("hostelId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid hostelId")
			return
		}
		filter.HostelID = uint(id)
	}

	rooms, err := ctrl.Rooms.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room (GET /api/room/:id)
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := ctrl.Rooms.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Create Room (POST /api/room)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctrl.Rooms.Create(&room); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "room number already exists in this hostel")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// 4. Update Room (PUT/PATCH /api/room/:id)
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	room, err := ctrl.Rooms.Update(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Delete Room (DELETE /api/room/:id)
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctrl.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// paramID parses the numeric :id path parameter and writes the 400
// itself on failure.
func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
