package services

import (
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type HostelService struct {
	DB *gorm.DB
}

func NewHostelService(db *gorm.DB) *HostelService {
	return &HostelService{DB: db}
}

func (s *HostelService) List() ([]models.Hostel, error) {
	var hostels []models.Hostel
	if err := s.DB.Order("name ASC").Find(&hostels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hostels: %w", err)
	}
	return hostels, nil
}

func (s *HostelService) Get(id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := s.DB.Preload("Rooms").First(&hostel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, fmt.Errorf("failed to load hostel %d: %w", id, err)
	}
	return &hostel, nil
}

func (s *HostelService) Create(hostel *models.Hostel) error {
	hostel.Name = strings.TrimSpace(hostel.Name)
	if hostel.Name == "" {
		return fmt.Errorf("validation: hostel name is required")
	}
	if err := s.DB.Create(hostel).Error; err != nil {
		return fmt.Errorf("failed to create hostel: %w", err)
	}
	return nil
}

var hostelProtectedFields = []string{
	"id", "ID",
	"created_at", "createdAt",
	"updated_at", "updatedAt",
	"deleted_at", "deletedAt",
	"rooms",
}

func (s *HostelService) Update(id uint, patch map[string]interface{}) (*models.Hostel, error) {
	for _, f := range hostelProtectedFields {
		delete(patch, f)
	}
	if v, ok := patch["hostelCampus"]; ok {
		patch["hostel_campus"] = v
		delete(patch, "hostelCampus")
	}
	if v, ok := patch["genderRestriction"]; ok {
		patch["gender_restriction"] = v
		delete(patch, "genderRestriction")
	}
	if v, ok := patch["rulesAndPolicies"]; ok {
		patch["rules_and_policies"] = v
		delete(patch, "rulesAndPolicies")
	}

	res := s.DB.Model(&models.Hostel{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update hostel %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		s.DB.Model(&models.Hostel{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return nil, ErrHostelNotFound
		}
	}
	return s.Get(id)
}

// Delete removes a hostel. Its rooms survive with a detached hostel_id;
// room deletion stays an explicit admin action per room.
func (s *HostelService) Delete(id uint) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Hostel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete hostel %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrHostelNotFound
	}
	return nil
}
