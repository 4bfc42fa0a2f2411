package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomRequest statuses. pending is the only non-terminal state; once a
// request is approved or declined it never transitions again.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusDeclined = "declined"
)

type RoomRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StudentID uint `gorm:"index;column:student_id" json:"studentId"`
	RoomID    uint `gorm:"index;column:room_id" json:"roomId"`

	// Zero-based bed index, must be < room.Capacity at creation time.
	Bed int `gorm:"column:bed" json:"bed"`

	Status string `gorm:"size:32;default:pending;index" json:"status"`

	// Set when an admin approves or declines; nil while pending.
	DecidedAt *time.Time `gorm:"column:decided_at" json:"decidedAt,omitempty"`

	Student Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Room    Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Terminal reports whether the request has reached a state no further
// transition is permitted from.
func (r *RoomRequest) Terminal() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusDeclined
}
