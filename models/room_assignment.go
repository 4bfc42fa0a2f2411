package models

import "time"

// RoomAssignment is one occupied bed: the join row between a room and a
// student, addressed by bed index. Rows are hard-deleted on unassign so
// the unique indexes below stay honest; RoomRequest keeps the history.
type RoomAssignment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	RoomID    uint `gorm:"index;column:room_id;uniqueIndex:idx_room_bed;uniqueIndex:idx_room_student" json:"roomId"`
	StudentID uint `gorm:"index;column:student_id;uniqueIndex:idx_room_student" json:"studentId"`

	// Zero-based position within the room's capacity; the addressable
	// unit of occupancy.
	BedIndex int `gorm:"column:bed_index;uniqueIndex:idx_room_bed" json:"bed"`

	Student Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
}
