package service

import (
	"testing"

	"github.com/mwasawell/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupNewsletterTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.NewsletterSubscriber{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	gdb, cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(gdb)
	subscriber, err := svc.Subscribe("  Reader@Example.COM  ")
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	if subscriber.Email != "reader@example.com" {
		t.Fatalf("expected normalized email, got %q", subscriber.Email)
	}
	if !subscriber.IsActive {
		t.Fatal("new subscriber must be active")
	}
	if subscriber.SubscribedAt.IsZero() {
		t.Fatal("expected subscribed_at to be set")
	}
}

func TestSubscribeRejectsEmptyAndInvalid(t *testing.T) {
	gdb, cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(gdb)

	_, err := svc.Subscribe("   ")
	if !IsValidation(err) || err.Error() != "Please enter your email address." {
		t.Fatalf("unexpected empty-address result: %v", err)
	}

	_, err = svc.Subscribe("not-an-email")
	if !IsValidation(err) || err.Error() != "Please enter a valid email address." {
		t.Fatalf("unexpected invalid-address result: %v", err)
	}
}

func TestSubscribeRejectsDuplicate(t *testing.T) {
	gdb, cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(gdb)
	if _, err := svc.Subscribe("reader@example.com"); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	_, err := svc.Subscribe("READER@example.com")
	if !IsValidation(err) {
		t.Fatalf("expected validation error for duplicate, got %v", err)
	}
	if err.Error() != "This email is already subscribed to our newsletter." {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	var count int64
	gdb.Model(&db.NewsletterSubscriber{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single subscriber row, got %d", count)
	}
}

func TestDeactivateSubscriber(t *testing.T) {
	gdb, cleanup := setupNewsletterTestDB(t)
	defer cleanup()

	svc := NewNewsletterService(gdb)
	subscriber, err := svc.Subscribe("reader@example.com")
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}

	if err := svc.Deactivate(subscriber.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	var stored db.NewsletterSubscriber
	if err := gdb.First(&stored, subscriber.ID).Error; err != nil {
		t.Fatalf("load subscriber: %v", err)
	}
	if stored.IsActive {
		t.Fatal("expected subscriber to be inactive")
	}

	if err := svc.Deactivate(9999); err == nil {
		t.Fatal("expected error for unknown subscriber")
	}
}
