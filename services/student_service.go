package services

import (
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (s *StudentService) List() ([]models.Student, error) {
	var students []models.Student
	if err := s.DB.Order("full_name ASC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

func (s *StudentService) Get(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.DB.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student %d: %w", id, err)
	}
	return &student, nil
}

func (s *StudentService) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student by email: %w", err)
	}
	return &student, nil
}

// Create hashes the plaintext password before storing.
func (s *StudentService) Create(student *models.Student, password string) error {
	student.FullName = strings.TrimSpace(student.FullName)
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	if student.FullName == "" || student.Email == "" {
		return fmt.Errorf("validation: full name and email are required")
	}
	if password == "" {
		return fmt.Errorf("validation: password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	student.Password = string(hash)

	if err := s.DB.Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

var studentProtectedFields = []string{
	"id", "ID",
	"created_at", "createdAt",
	"updated_at", "updatedAt",
	"deleted_at", "deletedAt",
	"password",
}

func (s *StudentService) Update(id uint, patch map[string]interface{}) (*models.Student, error) {
	for _, f := range studentProtectedFields {
		delete(patch, f)
	}
	if v, ok := patch["fullName"]; ok {
		patch["full_name"] = v
		delete(patch, "fullName")
	}
	if v, ok := patch["regNumber"]; ok {
		patch["reg_number"] = v
		delete(patch, "regNumber")
	}

	res := s.DB.Model(&models.Student{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update student %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		s.DB.Model(&models.Student{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return nil, ErrStudentNotFound
		}
	}
	return s.Get(id)
}

// Delete soft-deletes the student. Assignments are released so the bed
// frees up; request history stays.
func (s *StudentService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("failed to load student %d: %w", id, err)
		}

		// release any beds; occupancy counters are repaired per room
		var assignments []models.RoomAssignment
		if err := tx.Where("student_id = ?", id).Find(&assignments).Error; err != nil {
			return fmt.Errorf("failed to load assignments: %w", err)
		}
		if len(assignments) > 0 {
			if err := tx.Where("student_id = ?", id).Delete(&models.RoomAssignment{}).Error; err != nil {
				return fmt.Errorf("failed to delete assignments: %w", err)
			}
			for _, a := range assignments {
				var room models.Room
				if err := tx.First(&room, a.RoomID).Error; err != nil {
					continue
				}
				var count int64
				if err := tx.Model(&models.RoomAssignment{}).Where("room_id = ?", a.RoomID).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to count assignments: %w", err)
				}
				if err := bumpRoom(tx, &room, int(count)); err != nil {
					return err
				}
			}
		}

		if err := tx.Delete(&student).Error; err != nil {
			return fmt.Errorf("failed to delete student %d: %w", id, err)
		}
		return nil
	})
}
