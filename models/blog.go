package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model

	Title    string `gorm:"size:255" json:"title"`
	Slug     string `gorm:"uniqueIndex;size:255" json:"slug"`
	Body     string `gorm:"type:text" json:"body"`
	Author   string `gorm:"size:150" json:"author"`
	CoverURL string `gorm:"column:cover_url;size:512" json:"coverUrl"`

	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"publishedAt,omitempty"`
}
