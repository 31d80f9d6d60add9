package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

// NewsletterService manages newsletter subscriptions.
type NewsletterService struct {
	db *gorm.DB
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(gdb *gorm.DB) *NewsletterService {
	return &NewsletterService{db: gdb}
}

// Subscribe validates the address and creates a subscription. Duplicate
// addresses are rejected before creation; the unique index backstops the
// check so a race still cannot produce a second row.
func (s *NewsletterService) Subscribe(email string) (*db.NewsletterSubscriber, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, &ValidationError{Message: "Please enter your email address."}
	}
	if !strings.Contains(normalized, "@") || !strings.Contains(normalized, ".") {
		return nil, &ValidationError{Message: "Please enter a valid email address."}
	}

	var count int64
	if err := s.db.Model(&db.NewsletterSubscriber{}).Where("email = ?", normalized).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check subscriber: %w", err)
	}
	if count > 0 {
		return nil, &ValidationError{Message: "This email is already subscribed to our newsletter."}
	}

	subscriber := db.NewsletterSubscriber{
		Email:        normalized,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}

	if err := s.db.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Message: "This email is already subscribed to our newsletter."}
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return &subscriber, nil
}

// List returns subscribers for the admin screen, newest first.
func (s *NewsletterService) List() ([]db.NewsletterSubscriber, error) {
	var subscribers []db.NewsletterSubscriber
	if err := s.db.Order("subscribed_at DESC").Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subscribers, nil
}

// Deactivate opts a subscriber out without deleting the row.
func (s *NewsletterService) Deactivate(id uint) error {
	result := s.db.Model(&db.NewsletterSubscriber{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivate subscriber: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("subscriber not found")
	}
	return nil
}
