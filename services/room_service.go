package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// RoomService is the room entity store. Occupancy mutations live in
// AllocationService; this service never touches current_occupancy.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows List; zero values mean "no constraint".
type RoomFilter struct {
	HostelID uint
	Block    string
	Floor    string
	Status   string
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	q := s.DB.Preload("Hostel").Preload("Assignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("bed_index ASC")
	}).Preload("Assignments.Student")

	if filter.HostelID != 0 {
		q = q.Where("hostel_id = ?", filter.HostelID)
	}
	if filter.Block != "" {
		q = q.Where("room_block = ?", filter.Block)
	}
	if filter.Floor != "" {
		q = q.Where("room_floor = ?", filter.Floor)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hostel").Preload("Assignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("bed_index ASC")
	}).Preload("Assignments.Student").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("validation: room number is required")
	}
	if room.Capacity <= 0 {
		return fmt.Errorf("validation: capacity must be positive")
	}

	if room.HostelID != nil {
		var hostel models.Hostel
		if err := s.DB.First(&hostel, *room.HostelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHostelNotFound
			}
			return fmt.Errorf("failed to check hostel: %w", err)
		}
	}

	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	room.CurrentOccupancy = 0

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// protected fields stripped from every patch; occupancy and version are
// owned by AllocationService.
var roomProtectedFields = []string{
	"id", "ID",
	"created_at", "createdAt",
	"updated_at", "updatedAt",
	"deleted_at", "deletedAt",
	"version",
	"current_occupancy", "currentOccupancy",
	"assignedStudents", "assignments",
}

// Update applies a partial update from a JSON patch map.
func (s *RoomService) Update(id uint, patch map[string]interface{}) (*models.Room, error) {
	for _, f := range roomProtectedFields {
		delete(patch, f)
	}

	// normalize camelCase keys the dashboard sends
	if v, ok := patch["roomNumber"]; ok {
		patch["room_number"] = v
		delete(patch, "roomNumber")
	}
	if v, ok := patch["roomBlock"]; ok {
		patch["room_block"] = v
		delete(patch, "roomBlock")
	}
	if v, ok := patch["roomFloor"]; ok {
		patch["room_floor"] = v
		delete(patch, "roomFloor")
	}
	if v, ok := patch["hostelId"]; ok {
		patch["hostel_id"] = v
		delete(patch, "hostelId")
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// distinguish missing room from a no-op patch
		var count int64
		s.DB.Model(&models.Room{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return nil, ErrRoomNotFound
		}
	}
	return s.Get(id)
}

// Delete removes a room and cleans up after it in one transaction:
// pending requests are declined (history kept) and assignment rows
// removed, so no orphaned occupancy survives the room.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}

		now := time.Now().UTC()
		if err := tx.Model(&models.RoomRequest{}).
			Where("room_id = ? AND status = ?", id, models.RequestStatusPending).
			Updates(map[string]interface{}{
				"status":     models.RequestStatusDeclined,
				"decided_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to decline pending requests: %w", err)
		}

		if err := tx.Where("room_id = ?", id).Delete(&models.RoomAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete assignments: %w", err)
		}

		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
}
