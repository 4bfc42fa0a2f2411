package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// AllocationService is the single writer of room occupancy. Every
// mutation runs in one transaction and finishes with a version-checked
// room update, so occupancy can never drift from the assignment rows
// and two concurrent admins cannot overbook a bed.
type AllocationService struct {
	DB *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{DB: db}
}

// AnyBed asks AssignStudent to pick the lowest free bed index.
const AnyBed = -1

// ReconcileResult reports what Reconcile changed, if anything.
type ReconcileResult struct {
	RoomID            uint   `json:"roomId"`
	PreviousOccupancy int    `json:"previousOccupancy"`
	Occupancy         int    `json:"occupancy"`
	PreviousStatus    string `json:"previousStatus"`
	Status            string `json:"status"`
	Changed           bool   `json:"changed"`
}

// statusFor derives the room status from occupancy. Maintenance is an
// admin decision and is never overridden here.
func statusFor(room *models.Room, occupancy int) string {
	if room.Status == models.RoomStatusUnderMaintenance {
		return room.Status
	}
	if room.Capacity > 0 && occupancy >= room.Capacity {
		return models.RoomStatusOccupied
	}
	return models.RoomStatusAvailable
}

// bumpRoom applies the occupancy/status update guarded by the room's
// version. Zero rows affected means a concurrent writer won.
func bumpRoom(tx *gorm.DB, room *models.Room, occupancy int) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND version = ?", room.ID, room.Version).
		Updates(map[string]interface{}{
			"current_occupancy": occupancy,
			"status":            statusFor(room, occupancy),
			"version":           room.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomConflict
	}
	return nil
}

func loadRoomForUpdate(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.Preload("Assignments").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	return &room, nil
}

// pickBed resolves the requested bed index, or the lowest free one when
// bed == AnyBed.
func pickBed(room *models.Room, bed int) (int, error) {
	if bed == AnyBed {
		for i := 0; i < room.Capacity; i++ {
			if !room.BedOccupied(i) {
				return i, nil
			}
		}
		return 0, ErrCapacityExceeded
	}
	if bed < 0 || bed >= room.Capacity {
		return 0, ErrBedOutOfRange
	}
	if room.BedOccupied(bed) {
		return 0, ErrBedOccupied
	}
	return bed, nil
}

// assignInTx performs the shared assign path: validate, insert the
// assignment row, recount, bump the room.
func (s *AllocationService) assignInTx(tx *gorm.DB, room *models.Room, studentID uint, bed int) (int, error) {
	if room.Status == models.RoomStatusUnderMaintenance {
		return 0, ErrRoomUnavailable
	}
	if room.IsFull() {
		return 0, ErrCapacityExceeded
	}

	var student models.Student
	if err := tx.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrStudentNotFound
		}
		return 0, fmt.Errorf("failed to load student %d: %w", studentID, err)
	}

	for _, a := range room.Assignments {
		if a.StudentID == studentID {
			return 0, ErrAlreadyAssigned
		}
	}

	chosen, err := pickBed(room, bed)
	if err != nil {
		return 0, err
	}

	assignment := models.RoomAssignment{
		RoomID:    room.ID,
		StudentID: studentID,
		BedIndex:  chosen,
	}
	if err := tx.Create(&assignment).Error; err != nil {
		return 0, fmt.Errorf("failed to create assignment: %w", err)
	}

	var count int64
	if err := tx.Model(&models.RoomAssignment{}).Where("room_id = ?", room.ID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	if err := bumpRoom(tx, room, int(count)); err != nil {
		return 0, err
	}
	return chosen, nil
}

// AssignStudent puts a student into a room, at the given bed index or
// the lowest free one when bed == AnyBed.
func (s *AllocationService) AssignStudent(roomID, studentID uint, bed int) (*models.Room, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoomForUpdate(tx, roomID)
		if err != nil {
			return err
		}
		_, err = s.assignInTx(tx, room, studentID, bed)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.roomWithAssignments(roomID)
}

// UnassignStudent removes a student from a room and frees the bed.
func (s *AllocationService) UnassignStudent(roomID, studentID uint) (*models.Room, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoomForUpdate(tx, roomID)
		if err != nil {
			return err
		}

		found := false
		for _, a := range room.Assignments {
			if a.StudentID == studentID {
				found = true
				break
			}
		}
		if !found {
			return ErrNotAssigned
		}

		if err := tx.Where("room_id = ? AND student_id = ?", roomID, studentID).
			Delete(&models.RoomAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete assignment: %w", err)
		}

		var count int64
		if err := tx.Model(&models.RoomAssignment{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count assignments: %w", err)
		}

		return bumpRoom(tx, room, int(count))
	})
	if err != nil {
		return nil, err
	}
	return s.roomWithAssignments(roomID)
}

// Allocate is the atomic form of approve-then-assign: in a single
// transaction the request is marked approved and the student is placed
// at the requested bed. Any refusal rolls back both, so the request
// stays pending.
func (s *AllocationService) Allocate(requestID uint) (*models.RoomRequest, error) {
	var decided models.RoomRequest

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var req models.RoomRequest
		if err := tx.First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to load request %d: %w", requestID, err)
		}

		if req.Terminal() {
			return ErrRequestTerminal
		}

		room, err := loadRoomForUpdate(tx, req.RoomID)
		if err != nil {
			return err
		}

		if _, err := s.assignInTx(tx, room, req.StudentID, req.Bed); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&req).Updates(map[string]interface{}{
			"status":     models.RequestStatusApproved,
			"decided_at": now,
		}).Error; err != nil {
			return fmt.Errorf("failed to approve request: %w", err)
		}

		decided = req
		decided.Status = models.RequestStatusApproved
		decided.DecidedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &decided, nil
}

// Reconcile recomputes a room's occupancy from its assignment rows and
// repairs the stored counter and status if they drifted. It exists for
// data imported from the legacy split approve/assign flow.
func (s *AllocationService) Reconcile(roomID uint) (*ReconcileResult, error) {
	var result ReconcileResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoomForUpdate(tx, roomID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.RoomAssignment{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count assignments: %w", err)
		}

		want := statusFor(room, int(count))
		result = ReconcileResult{
			RoomID:            roomID,
			PreviousOccupancy: room.CurrentOccupancy,
			Occupancy:         int(count),
			PreviousStatus:    room.Status,
			Status:            want,
		}

		if room.CurrentOccupancy == int(count) && room.Status == want {
			return nil
		}

		result.Changed = true
		return bumpRoom(tx, room, int(count))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *AllocationService) roomWithAssignments(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Assignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("bed_index ASC")
	}).Preload("Assignments.Student").First(&room, roomID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room %d: %w", roomID, err)
	}
	return &room, nil
}
