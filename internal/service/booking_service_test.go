package service

import (
	"strings"
	"testing"

	"github.com/mwasawell/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBookingTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ServiceBooking{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func validBookingInput() BookingInput {
	return BookingInput{
		FullName:      "Jane Doe",
		Email:         "Jane@Example.com",
		Phone:         "0712345678",
		ServiceType:   db.CategoryCounselling,
		SessionMode:   db.SessionModeOnline,
		PreferredDate: "2026-09-15",
		PreferredTime: "14:30",
		Description:   "First session",
	}
}

func TestCreateBookingPersistsPendingRecord(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if booking.Status != db.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %s", booking.Email)
	}
	if booking.EmailSent {
		t.Fatal("new booking must start with email_sent false")
	}
	if booking.SubmittedAt.IsZero() {
		t.Fatal("expected submitted_at to be set")
	}

	var count int64
	gdb.Model(&db.ServiceBooking{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 booking, got %d", count)
	}
}

func TestCreateBookingAcceptsTwelveHourTime(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	input := validBookingInput()
	input.PreferredTime = "2:30 pm"

	booking, err := svc.Create(input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.PreferredTime.Hour() != 14 || booking.PreferredTime.Minute() != 30 {
		t.Fatalf("expected 14:30, got %02d:%02d",
			booking.PreferredTime.Hour(), booking.PreferredTime.Minute())
	}
}

func TestCreateBookingReportsMissingFields(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	input := validBookingInput()
	input.Phone = "  "

	_, err := svc.Create(input)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "phone") {
		t.Fatalf("expected message to name the missing field, got %q", err.Error())
	}

	var count int64
	gdb.Model(&db.ServiceBooking{}).Count(&count)
	if count != 0 {
		t.Fatal("validation failure must not persist a record")
	}
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	input := validBookingInput()
	input.PreferredDate = "15/09/2026"

	_, err := svc.Create(input)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Invalid date format. Please use YYYY-MM-DD." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCreateBookingRejectsBadTime(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	input := validBookingInput()
	input.PreferredTime = "half past two"

	_, err := svc.Create(input)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Invalid time format. Please use HH:MM or HH:MM AM/PM." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestListBookingsFilters(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	first, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	second := validBookingInput()
	second.FullName = "John Smith"
	second.Email = "john@example.com"
	if _, err := svc.Create(second); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(first.ID, db.BookingStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	confirmed, err := svc.List(BookingFilter{Status: db.BookingStatusConfirmed})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != first.ID {
		t.Fatalf("expected only the confirmed booking, got %d results", len(confirmed))
	}

	matched, err := svc.List(BookingFilter{Search: "Smith"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(matched) != 1 || matched[0].FullName != "John Smith" {
		t.Fatalf("expected search to match John Smith, got %d results", len(matched))
	}
}

func TestUpdateBookingStatusRejectsUnknownValues(t *testing.T) {
	gdb, cleanup := setupBookingTestDB(t)
	defer cleanup()

	svc := NewBookingService(gdb)
	booking, err := svc.Create(validBookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(booking.ID, "archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}

	if _, err := svc.UpdateStatus(9999, db.BookingStatusConfirmed); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
