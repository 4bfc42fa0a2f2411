package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactMessage struct {
	gorm.Model

	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:150" json:"email"`
	Subject string `gorm:"size:255" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Responded   bool       `gorm:"default:false" json:"responded"`
	Response    string     `gorm:"type:text" json:"response,omitempty"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"respondedAt,omitempty"`
}
