package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

// ErrContactNotFound 在指定留言不存在时返回
var ErrContactNotFound = errors.New("contact submission not found")

// ContactService persists messages from the main contact form and the footer
// quick inquiry form.
type ContactService struct {
	db *gorm.DB
}

// ContactInput carries the main contact form fields.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// FooterContactInput carries the footer quick inquiry fields; the subject is
// fixed server-side.
type FooterContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactFilter describes admin list filters.
type ContactFilter struct {
	UnreadOnly bool
}

// NewContactService constructs a ContactService.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Create validates and persists a contact form submission.
func (s *ContactService) Create(input ContactInput) (*db.ContactSubmission, error) {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"message", input.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, missingFieldsError(missing)
	}

	contact := db.ContactSubmission{
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Subject:     strings.TrimSpace(input.Subject),
		Message:     strings.TrimSpace(input.Message),
		SubmittedAt: time.Now(),
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return &contact, nil
}

// CreateFooter persists a footer quick inquiry as a contact submission with
// the fixed footer subject.
func (s *ContactService) CreateFooter(input FooterContactInput) (*db.ContactSubmission, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, &ValidationError{Message: "Please fill in all required fields: name, email, and message."}
	}

	return s.Create(ContactInput{
		Name:    input.Name,
		Email:   input.Email,
		Subject: db.FooterContactSubject,
		Message: input.Message,
	})
}

// List returns contact submissions for the admin screen, newest first.
func (s *ContactService) List(filter ContactFilter) ([]db.ContactSubmission, error) {
	query := s.db.Model(&db.ContactSubmission{})
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var contacts []db.ContactSubmission
	if err := query.Order("submitted_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return contacts, nil
}

// MarkRead flags a submission as handled.
func (s *ContactService) MarkRead(id uint) error {
	result := s.db.Model(&db.ContactSubmission{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("mark contact read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
