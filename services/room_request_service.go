package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// RoomRequestService owns the request lifecycle: created pending by a
// student, decided once by an admin, terminal afterwards. Approve here
// does NOT touch room occupancy — that is the legacy split flow kept
// for the existing admin screens; AllocationService.Allocate is the
// atomic path.
type RoomRequestService struct {
	DB *gorm.DB
}

func NewRoomRequestService(db *gorm.DB) *RoomRequestService {
	return &RoomRequestService{DB: db}
}

// Create validates the preconditions the dashboard used to leave to
// disabled buttons and records a pending request.
func (s *RoomRequestService) Create(studentID, roomID uint, bed int) (*models.RoomRequest, error) {
	var student models.Student
	if err := s.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}

	var room models.Room
	if err := s.DB.Preload("Assignments").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}

	if room.Status == models.RoomStatusUnderMaintenance {
		return nil, ErrRoomUnavailable
	}
	if bed < 0 || bed >= room.Capacity {
		return nil, ErrBedOutOfRange
	}
	if room.BedOccupied(bed) {
		return nil, ErrBedOccupied
	}

	// one live (pending or approved) request per student per room
	var dup int64
	if err := s.DB.Model(&models.RoomRequest{}).
		Where("student_id = ? AND room_id = ? AND status IN ?", studentID, roomID,
			[]string{models.RequestStatusPending, models.RequestStatusApproved}).
		Count(&dup).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing requests: %w", err)
	}
	if dup > 0 {
		return nil, ErrDuplicateRequest
	}

	// double-booking guard: at most one approved request per (room, bed)
	var taken int64
	if err := s.DB.Model(&models.RoomRequest{}).
		Where("room_id = ? AND bed = ? AND status = ?", roomID, bed, models.RequestStatusApproved).
		Count(&taken).Error; err != nil {
		return nil, fmt.Errorf("failed to check approved requests: %w", err)
	}
	if taken > 0 {
		return nil, ErrBedOccupied
	}

	req := models.RoomRequest{
		StudentID: studentID,
		RoomID:    roomID,
		Bed:       bed,
		Status:    models.RequestStatusPending,
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return &req, nil
}

// Approve marks a pending request approved. Room occupancy is not
// mutated; pair with AllocationService.AssignStudent, or use Allocate.
func (s *RoomRequestService) Approve(requestID uint) (*models.RoomRequest, error) {
	return s.decide(requestID, models.RequestStatusApproved)
}

// Decline marks a pending request declined.
func (s *RoomRequestService) Decline(requestID uint) (*models.RoomRequest, error) {
	return s.decide(requestID, models.RequestStatusDeclined)
}

func (s *RoomRequestService) decide(requestID uint, status string) (*models.RoomRequest, error) {
	var req models.RoomRequest

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to load request %d: %w", requestID, err)
		}

		if req.Terminal() {
			return ErrRequestTerminal
		}

		if status == models.RequestStatusApproved {
			// refuse a second approval for the same (room, bed)
			var taken int64
			if err := tx.Model(&models.RoomRequest{}).
				Where("room_id = ? AND bed = ? AND status = ? AND id <> ?",
					req.RoomID, req.Bed, models.RequestStatusApproved, req.ID).
				Count(&taken).Error; err != nil {
				return fmt.Errorf("failed to check approved requests: %w", err)
			}
			if taken > 0 {
				return ErrBedOccupied
			}
		}

		now := time.Now().UTC()
		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status":     status,
			"decided_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
		req.Status = status
		req.DecidedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListForStudent returns a student's requests, newest first.
func (s *RoomRequestService) ListForStudent(studentID uint) ([]models.RoomRequest, error) {
	var list []models.RoomRequest
	if err := s.DB.
		Preload("Room").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return list, nil
}

// ListAll returns all requests, optionally filtered by status.
func (s *RoomRequestService) ListAll(status string) ([]models.RoomRequest, error) {
	q := s.DB.Preload("Room").Preload("Student").Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var list []models.RoomRequest
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return list, nil
}

// FilterRequests is the pure form of the dashboard's client-side
// filter: a request passes when it matches BOTH the status filter and
// the search term (student name or room number, case-insensitive).
// status "" or "all" matches everything; an empty search term matches
// everything.
func FilterRequests(reqs []models.RoomRequest, status, search string) []models.RoomRequest {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.RoomRequest, 0, len(reqs))

	for _, r := range reqs {
		if status != "" && status != "all" && r.Status != status {
			continue
		}
		if search != "" {
			name := strings.ToLower(r.Student.FullName)
			number := strings.ToLower(r.Room.RoomNumber)
			if !strings.Contains(name, search) && !strings.Contains(number, search) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
