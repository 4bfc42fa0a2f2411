package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GalleryItem stores the URL of an already-hosted image; upload handling
// lives outside this service.
type GalleryItem struct {
	gorm.Model

	Title    string `gorm:"size:255" json:"title"`
	ImageURL string `gorm:"column:image_url;size:512" json:"imageUrl"`
	Caption  string `gorm:"size:512" json:"caption"`

	// JSON array of tag strings
	Tags datatypes.JSON `json:"tags"`
}
