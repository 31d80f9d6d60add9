package db

import (
	"time"

	"gorm.io/gorm"
)

// FooterContactSubject is the fixed subject applied to footer quick inquiries,
// which share the contact_submissions table with the main contact form.
const FooterContactSubject = "Footer Quick Inquiry"

// ContactSubmission is a message captured from the contact or footer form.
type ContactSubmission struct {
	gorm.Model
	Name        string `gorm:"size:200;not null"`
	Email       string `gorm:"size:254;not null"`
	Subject     string `gorm:"size:300;not null"`
	Message     string `gorm:"type:text;not null"`
	SubmittedAt time.Time
	IsRead      bool   `gorm:"default:false"`
	EmailSent   bool   `gorm:"default:false"`
	EmailError  string `gorm:"type:text"`
}
