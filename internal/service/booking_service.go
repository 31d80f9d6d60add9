package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBookingNotFound 在指定预约不存在时返回
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingStatusInvalid is returned for an unknown status value.
	ErrBookingStatusInvalid = errors.New("invalid booking status")
)

const (
	bookingDateLayout   = "2006-01-02"
	bookingTimeLayout   = "15:04"
	bookingTimeLayout12 = "3:04 PM"
)

var bookingStatuses = []string{
	db.BookingStatusPending,
	db.BookingStatusConfirmed,
	db.BookingStatusCompleted,
	db.BookingStatusCancelled,
}

// BookingService handles service booking submissions and their admin workflow.
type BookingService struct {
	db *gorm.DB
}

// BookingInput carries the raw booking form fields. Date and time arrive as
// strings and are validated before any persistence attempt.
type BookingInput struct {
	FullName      string
	Email         string
	Phone         string
	ServiceType   string
	SessionMode   string
	PreferredDate string
	PreferredTime string
	Description   string
}

// BookingFilter describes admin list filters.
type BookingFilter struct {
	Status string
	Search string
}

// NewBookingService constructs a BookingService.
func NewBookingService(gdb *gorm.DB) *BookingService {
	return &BookingService{db: gdb}
}

// Create validates the submission and persists a pending booking. Validation
// failures are reported before any write; notification dispatch is the
// caller's responsibility once the record exists.
func (s *BookingService) Create(input BookingInput) (*db.ServiceBooking, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"fullName", input.FullName},
		{"email", input.Email},
		{"phone", input.Phone},
		{"serviceType", input.ServiceType},
		{"sessionMode", input.SessionMode},
		{"preferredDate", input.PreferredDate},
		{"preferredTime", input.PreferredTime},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, missingFieldsError(missing)
	}

	date, err := time.ParseInLocation(bookingDateLayout, strings.TrimSpace(input.PreferredDate), time.Local)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Please use YYYY-MM-DD."}
	}

	timeOfDay, err := parseBookingTime(input.PreferredTime)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid time format. Please use HH:MM or HH:MM AM/PM."}
	}

	booking := db.ServiceBooking{
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		ServiceType:   strings.TrimSpace(input.ServiceType),
		SessionMode:   strings.TrimSpace(input.SessionMode),
		PreferredDate: date,
		PreferredTime: timeOfDay,
		Description:   strings.TrimSpace(input.Description),
		Status:        db.BookingStatusPending,
		SubmittedAt:   time.Now(),
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

// parseBookingTime accepts 24-hour HH:MM or 12-hour HH:MM AM/PM input, with
// the meridiem matched case-insensitively.
func parseBookingTime(raw string) (time.Time, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if strings.Contains(value, "AM") || strings.Contains(value, "PM") {
		return time.ParseInLocation(bookingTimeLayout12, value, time.Local)
	}
	return time.ParseInLocation(bookingTimeLayout, value, time.Local)
}

// List returns bookings for the admin screen, newest first.
func (s *BookingService) List(filter BookingFilter) ([]db.ServiceBooking, error) {
	query := s.db.Model(&db.ServiceBooking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", strings.TrimSpace(filter.Search))
		query = query.Where("full_name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
	}

	var bookings []db.ServiceBooking
	if err := query.Order("submitted_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking through its workflow states.
func (s *BookingService) UpdateStatus(id uint, status string) (*db.ServiceBooking, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	valid := false
	for _, candidate := range bookingStatuses {
		if normalized == candidate {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: %s", ErrBookingStatusInvalid, status)
	}

	var booking db.ServiceBooking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	booking.Status = normalized
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return &booking, nil
}
