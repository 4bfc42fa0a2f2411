package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

// statusFor maps service sentinels onto HTTP status codes. Unknown
// errors become a 500 with a generic message; the detail goes to the
// log, not the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrHostelNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, services.ErrBedOutOfRange):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrBedOccupied),
		errors.Is(err, services.ErrAlreadyAssigned),
		errors.Is(err, services.ErrNotAssigned),
		errors.Is(err, services.ErrDuplicateRequest),
		errors.Is(err, services.ErrRequestTerminal),
		errors.Is(err, services.ErrRoomConflict):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}

func respondServiceError(c *gin.Context, err error) {
	code, msg := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	utils.JSONError(c, code, msg)
}
