package db

import (
	"time"

	"gorm.io/gorm"
)

const (
	// SessionModeInPerson is a face to face appointment.
	SessionModeInPerson = "in-person"
	// SessionModeOnline is a video call appointment.
	SessionModeOnline = "online"
	// SessionModeTelephone is a phone call appointment.
	SessionModeTelephone = "telephone"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ServiceBooking is an appointment request captured from the booking form.
// The record is created exactly once per submission; after creation only the
// status and the notification flags may change.
type ServiceBooking struct {
	gorm.Model
	FullName      string    `gorm:"size:200;not null"`
	Email         string    `gorm:"size:254;not null"`
	Phone         string    `gorm:"size:20;not null"`
	ServiceType   string    `gorm:"size:20;not null"`
	SessionMode   string    `gorm:"size:20;default:'in-person'"`
	PreferredDate time.Time `gorm:"not null"`
	PreferredTime time.Time `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	Status        string    `gorm:"size:20;default:'pending'"`
	SubmittedAt   time.Time
	EmailSent     bool   `gorm:"default:false"`
	EmailError    string `gorm:"type:text"`
}
