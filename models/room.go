package models

import (
	"gorm.io/gorm"
)

// Room statuses. Requests and assignments are refused while a room is
// under maintenance.
const (
	RoomStatusAvailable        = "available"
	RoomStatusOccupied         = "occupied"
	RoomStatusUnderMaintenance = "under-maintenance"
)

type Room struct {
	gorm.Model

	// Nullable FK so a room can be created before its hostel is wired up;
	// DB won't try to insert 0.
	HostelID *uint `json:"hostelId,omitempty" gorm:"column:hostel_id;index;uniqueIndex:idx_hostel_room_number"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex:idx_hostel_room_number;type:varchar(50)"`
	RoomBlock  string `json:"roomBlock" gorm:"column:room_block;type:varchar(50)"`
	RoomFloor  string `json:"roomFloor" gorm:"column:room_floor;type:varchar(10)"`

	Capacity int `json:"capacity"`

	// Must equal the number of assignment rows after every committed
	// transaction. AllocationService owns this column.
	CurrentOccupancy int `json:"currentOccupancy" gorm:"column:current_occupancy;default:0"`

	Status string  `json:"status" gorm:"size:50;default:available"`
	Price  float64 `json:"price"`

	// Optimistic concurrency token. Every occupancy mutation does
	// "... WHERE id = ? AND version = ?" and bumps it; a stale writer
	// gets zero rows affected and a conflict error.
	Version int64 `json:"version" gorm:"default:0"`

	Hostel      *Hostel          `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`
	Assignments []RoomAssignment `json:"assignedStudents" gorm:"foreignKey:RoomID"`
}

// BedOccupied reports whether the given bed index is taken in the
// preloaded assignment list.
func (r *Room) BedOccupied(bed int) bool {
	for _, a := range r.Assignments {
		if a.BedIndex == bed {
			return true
		}
	}
	return false
}

// IsFull is a convenience over the stored counter.
func (r *Room) IsFull() bool {
	return r.Capacity > 0 && r.CurrentOccupancy >= r.Capacity
}
