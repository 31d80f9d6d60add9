package db

import "gorm.io/gorm"

const (
	// SectionTypeVision identifies the vision guide section.
	SectionTypeVision = "vision"
	// SectionTypeMission identifies the mission guide section.
	SectionTypeMission = "mission"
	// SectionTypeCoreValues identifies the core values guide section.
	SectionTypeCoreValues = "core_values"
)

// RequiredSectionTypes lists the guide sections the homepage must always
// render, in their default display order.
var RequiredSectionTypes = []string{SectionTypeVision, SectionTypeMission, SectionTypeCoreValues}

// GuideSection is one of the three informational blocks (vision, mission,
// core values). The unique index on section_type is the serialization point
// for concurrent default materialization.
type GuideSection struct {
	gorm.Model
	SectionType string `gorm:"size:20;uniqueIndex;not null"`
	Title       string `gorm:"size:200;not null"`
	Content     string `gorm:"type:text;not null"`
	ImageURL    string `gorm:"size:500"`
	IsActive    bool   `gorm:"default:true"`
	Order       int    `gorm:"column:display_order;default:0"`
}
