package services

import "errors"

// Sentinel errors surfaced to controllers, which map them onto HTTP
// statuses. Anything not listed here is an internal failure.
var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrStudentNotFound = errors.New("student_not_found")
	ErrRequestNotFound = errors.New("request_not_found")
	ErrHostelNotFound  = errors.New("hostel_not_found")

	// Room is under maintenance; no requests or assignments accepted.
	ErrRoomUnavailable = errors.New("room_under_maintenance")

	ErrCapacityExceeded = errors.New("capacity_exceeded")
	ErrBedOutOfRange    = errors.New("bed_out_of_range")
	ErrBedOccupied      = errors.New("bed_occupied")
	ErrAlreadyAssigned  = errors.New("student_already_assigned")
	ErrNotAssigned      = errors.New("student_not_assigned")

	// Student already has a pending or approved request for this room.
	ErrDuplicateRequest = errors.New("duplicate_request")

	// Request reached approved/declined; no further transition allowed.
	ErrRequestTerminal = errors.New("request_already_decided")

	// Optimistic version check failed: another writer got there first.
	// The caller should re-read and retry.
	ErrRoomConflict = errors.New("room_version_conflict")
)
