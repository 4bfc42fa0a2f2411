package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hostel is pure reference data: rooms point at it, nothing here
// participates in the allocation lifecycle.
type Hostel struct {
	gorm.Model

	Name              string `json:"name" gorm:"size:255;uniqueIndex"`
	HostelCampus      string `json:"hostelCampus" gorm:"column:hostel_campus;size:255"`
	Block             string `json:"block" gorm:"size:50"`
	Floor             string `json:"floor" gorm:"size:10"`
	Location          string `json:"location" gorm:"type:text"`
	GenderRestriction string `json:"genderRestriction" gorm:"column:gender_restriction;size:50"`

	// JSON array of facility strings, e.g. ["wifi","laundry"]
	Facilities datatypes.JSON `json:"facilities" gorm:"column:facilities"`

	RulesAndPolicies string `json:"rulesAndPolicies" gorm:"column:rules_and_policies;type:text"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HostelID"`
}
