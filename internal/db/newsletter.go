package db

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterSubscriber is a mailing list entry. Email is unique so a repeat
// subscription attempt fails before a second row can exist.
type NewsletterSubscriber struct {
	gorm.Model
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	SubscribedAt time.Time
	IsActive     bool   `gorm:"default:true"`
	EmailSent    bool   `gorm:"default:false"`
	EmailError   string `gorm:"type:text"`
}
