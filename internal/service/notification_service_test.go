package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(subject, body, from string, to []string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Subject: subject, Body: body, From: from, To: to})
	return nil
}

func configuredMail() config.MailConfig {
	return config.MailConfig{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "mailer",
		Password:   "secret",
		FromEmail:  "noreply@example.com",
		AdminEmail: "admin@example.com",
	}
}

func setupNotificationTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.ServiceBooking{},
		&db.ContactSubmission{},
		&db.NewsletterSubscriber{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func seedBooking(t *testing.T, gdb *gorm.DB) *db.ServiceBooking {
	t.Helper()
	booking := db.ServiceBooking{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "0712345678",
		ServiceType:   db.CategoryCounselling,
		SessionMode:   db.SessionModeOnline,
		PreferredDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
		PreferredTime: time.Date(0, 1, 1, 14, 30, 0, 0, time.Local),
		Status:        db.BookingStatusPending,
		SubmittedAt:   time.Now(),
	}
	if err := gdb.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return &booking
}

func TestBookingCreatedSendsBothMessages(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{}
	svc := NewNotificationService(gdb, mailer, configuredMail())
	booking := seedBooking(t, gdb)

	svc.BookingCreated(booking)

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != "admin@example.com" {
		t.Fatalf("expected admin notice first, got %v", mailer.sent[0].To)
	}
	if mailer.sent[1].To[0] != "jane@example.com" {
		t.Fatalf("expected client confirmation, got %v", mailer.sent[1].To)
	}
	if !booking.EmailSent {
		t.Fatal("expected email_sent true after both sends")
	}

	var stored db.ServiceBooking
	if err := gdb.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if !stored.EmailSent || stored.EmailError != "" {
		t.Fatalf("expected persisted flags, got sent=%v error=%q", stored.EmailSent, stored.EmailError)
	}
}

func TestBookingCreatedRecordsFailure(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{err: errors.New("relay refused")}
	svc := NewNotificationService(gdb, mailer, configuredMail())
	booking := seedBooking(t, gdb)

	svc.BookingCreated(booking)

	if booking.EmailSent {
		t.Fatal("email_sent must stay false after a failed send")
	}

	var stored db.ServiceBooking
	if err := gdb.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if stored.EmailSent {
		t.Fatal("persisted email_sent must stay false")
	}
	if stored.EmailError != "relay refused" {
		t.Fatalf("expected failure reason recorded, got %q", stored.EmailError)
	}
}

func TestUnconfiguredMailSkipsQuietly(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{}
	svc := NewNotificationService(gdb, mailer, config.MailConfig{AdminEmail: "admin@example.com"})
	booking := seedBooking(t, gdb)

	svc.BookingCreated(booking)

	if len(mailer.sent) != 0 {
		t.Fatalf("expected no sends without credentials, got %d", len(mailer.sent))
	}

	var stored db.ServiceBooking
	if err := gdb.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if stored.EmailSent {
		t.Fatal("email_sent must stay false when mail is unconfigured")
	}
	if stored.EmailError != "" {
		t.Fatalf("skipped sends must not record an error, got %q", stored.EmailError)
	}
}

func TestBookingCreatedIsNoopWhenAlreadySent(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{}
	svc := NewNotificationService(gdb, mailer, configuredMail())
	booking := seedBooking(t, gdb)
	svc.BookingCreated(booking)

	before := len(mailer.sent)
	svc.BookingCreated(booking)
	if len(mailer.sent) != before {
		t.Fatalf("expected no extra sends, got %d new", len(mailer.sent)-before)
	}
}

func TestContactCreatedMarksSent(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{}
	svc := NewNotificationService(gdb, mailer, configuredMail())

	contact := db.ContactSubmission{
		Name:        "Jane",
		Email:       "jane@example.com",
		Subject:     "Inquiry",
		Message:     "Hello",
		SubmittedAt: time.Now(),
	}
	if err := gdb.Create(&contact).Error; err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	svc.ContactCreated(&contact)

	if len(mailer.sent) != 1 {
		t.Fatalf("expected one admin notice, got %d", len(mailer.sent))
	}
	if !contact.EmailSent {
		t.Fatal("expected email_sent true")
	}
}

func TestSubscriberCreatedSendsWelcomeAndNotice(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{}
	svc := NewNotificationService(gdb, mailer, configuredMail())

	subscriber := db.NewsletterSubscriber{
		Email:        "reader@example.com",
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	if err := gdb.Create(&subscriber).Error; err != nil {
		t.Fatalf("seed subscriber: %v", err)
	}

	svc.SubscriberCreated(&subscriber)

	if len(mailer.sent) != 2 {
		t.Fatalf("expected welcome plus notice, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != "reader@example.com" {
		t.Fatalf("expected welcome first, got %v", mailer.sent[0].To)
	}
	if !subscriber.EmailSent {
		t.Fatal("expected email_sent true")
	}
}

func TestResendPendingRetriesFailedRecords(t *testing.T) {
	gdb, cleanup := setupNotificationTestDB(t)
	defer cleanup()

	mailer := &recordingMailer{err: errors.New("relay refused")}
	svc := NewNotificationService(gdb, mailer, configuredMail())
	booking := seedBooking(t, gdb)
	svc.BookingCreated(booking)

	// Relay recovers before the manual resend.
	mailer.err = nil

	attempted, err := svc.ResendPending()
	if err != nil {
		t.Fatalf("ResendPending returned error: %v", err)
	}
	if attempted != 1 {
		t.Fatalf("expected 1 attempted record, got %d", attempted)
	}

	var stored db.ServiceBooking
	if err := gdb.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if !stored.EmailSent || stored.EmailError != "" {
		t.Fatalf("expected resend to clear flags, got sent=%v error=%q", stored.EmailSent, stored.EmailError)
	}
}
