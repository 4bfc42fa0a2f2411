package models

import "gorm.io/gorm"

// HeroContent is the welcome-page singleton; GetHeroContent lazily
// creates the single row.
type HeroContent struct {
	gorm.Model

	Heading    string `gorm:"size:255" json:"heading"`
	Subheading string `gorm:"size:512" json:"subheading"`
	ImageURL   string `gorm:"column:image_url;size:512" json:"imageUrl"`
	ButtonText string `gorm:"column:button_text;size:100" json:"buttonText"`
	ButtonLink string `gorm:"column:button_link;size:512" json:"buttonLink"`
}

// MessageSlide is one item of the front-page message slider, ordered by
// Position ascending.
type MessageSlide struct {
	gorm.Model

	Text     string `gorm:"type:text" json:"text"`
	Author   string `gorm:"size:150" json:"author"`
	Position int    `gorm:"index" json:"position"`
	Active   bool   `gorm:"default:true" json:"active"`
}
