package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ComplaintStatusOpen     = "open"
	ComplaintStatusResolved = "resolved"
)

type Complaint struct {
	gorm.Model

	StudentID *uint  `gorm:"index;column:student_id" json:"studentId,omitempty"`
	Subject   string `gorm:"size:255" json:"subject"`
	Body      string `gorm:"type:text" json:"body"`
	Category  string `gorm:"size:64" json:"category"`
	Status    string `gorm:"size:32;default:open;index" json:"status"`

	// Filled in when an admin resolves the complaint.
	AdminResponse string     `gorm:"column:admin_response;type:text" json:"adminResponse,omitempty"`
	ResolvedAt    *time.Time `gorm:"column:resolved_at" json:"resolvedAt,omitempty"`

	Student Student `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
}
