package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName  string `gorm:"size:255" json:"fullName"`
	Email     string `gorm:"uniqueIndex;size:150" json:"email"`
	Password  string `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	RegNumber string `gorm:"column:reg_number;size:64" json:"regNumber"`
	Phone     string `gorm:"size:50" json:"phone"`
	Gender    string `gorm:"size:20" json:"gender"`
	Course    string `gorm:"size:150" json:"course"`
}
