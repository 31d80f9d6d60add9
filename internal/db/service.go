package db

import "gorm.io/gorm"

const (
	// CategoryConsultancy covers consultancy and advisory engagements.
	CategoryConsultancy = "consultancy"
	// CategoryCounselling covers counselling and psychotherapy sessions.
	CategoryCounselling = "counselling"
	// CategoryTraining covers training programmes.
	CategoryTraining = "training"
)

// Service is a wellness service offered on the public site.
type Service struct {
	gorm.Model
	Name        string `gorm:"size:200;not null"`
	Category    string `gorm:"size:20;not null"`
	Description string `gorm:"type:text"`
	Price       string `gorm:"size:100;default:'Contact for pricing'"`
	IconClass   string `gorm:"size:50;default:'bi-heart-pulse'"`
	IsActive    bool   `gorm:"default:true"`
	Features    []ServiceFeature
}

// ServiceFeature is a single bullet point shown on a service card.
type ServiceFeature struct {
	gorm.Model
	ServiceID uint   `gorm:"index;not null"`
	Name      string `gorm:"size:150;not null"`
}
