package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

// NotificationService sends the transactional emails attached to lead-capture
// records. Dispatch is best-effort: a record is never rolled back or blocked
// because mail could not be delivered, and none of the hooks return errors.
// The email_sent flag on a record flips to true only when every required
// message for that record went out.
type NotificationService struct {
	db     *gorm.DB
	mailer Mailer
	cfg    config.MailConfig
}

// NewNotificationService constructs a NotificationService with explicit mail
// configuration rather than ambient process state.
func NewNotificationService(gdb *gorm.DB, mailer Mailer, cfg config.MailConfig) *NotificationService {
	return &NotificationService{db: gdb, mailer: mailer, cfg: cfg}
}

// BookingCreated sends the operator notice and the client confirmation for a
// freshly persisted booking. Call it once, right after the first create; a
// record whose notifications already went out is left untouched.
func (s *NotificationService) BookingCreated(booking *db.ServiceBooking) {
	if booking == nil || booking.EmailSent {
		return
	}

	adminOK, adminErr := s.safeSend(
		fmt.Sprintf("New Booking Request - %s", booking.FullName),
		bookingAdminBody(booking),
		[]string{s.cfg.AdminEmail},
	)
	clientOK, clientErr := s.safeSend(
		"Booking Confirmation - Mwasamwanda Well-being Services",
		bookingClientBody(booking),
		[]string{booking.Email},
	)

	if adminOK && clientOK {
		s.markSent(booking, &booking.EmailSent, &booking.EmailError)
		return
	}
	if err := lastErr(adminErr, clientErr); err != nil {
		s.markFailed(booking, &booking.EmailError, err)
	}
}

// ContactCreated sends the operator notice for a contact or footer submission.
func (s *NotificationService) ContactCreated(contact *db.ContactSubmission) {
	if contact == nil || contact.EmailSent {
		return
	}

	ok, err := s.safeSend(
		fmt.Sprintf("New Contact Form Submission: %s", contact.Subject),
		contactAdminBody(contact),
		[]string{s.cfg.AdminEmail},
	)

	if ok {
		s.markSent(contact, &contact.EmailSent, &contact.EmailError)
		return
	}
	if err != nil {
		s.markFailed(contact, &contact.EmailError, err)
	}
}

// SubscriberCreated sends the welcome email and the operator notice for a new
// newsletter subscription.
func (s *NotificationService) SubscriberCreated(subscriber *db.NewsletterSubscriber) {
	if subscriber == nil || subscriber.EmailSent {
		return
	}

	welcomeOK, welcomeErr := s.safeSend(
		"Welcome to Our Newsletter!",
		subscriberWelcomeBody(),
		[]string{subscriber.Email},
	)
	adminOK, adminErr := s.safeSend(
		"New Newsletter Subscriber",
		subscriberAdminBody(subscriber),
		[]string{s.cfg.AdminEmail},
	)

	if welcomeOK && adminOK {
		s.markSent(subscriber, &subscriber.EmailSent, &subscriber.EmailError)
		return
	}
	if err := lastErr(welcomeErr, adminErr); err != nil {
		s.markFailed(subscriber, &subscriber.EmailError, err)
	}
}

// ResendPending re-dispatches every record whose email_sent flag is still
// false. This is the operator-triggered retry path; nothing retries
// automatically. Returns the number of records attempted.
func (s *NotificationService) ResendPending() (int, error) {
	total := 0

	var bookings []db.ServiceBooking
	if err := s.db.Where("email_sent = ?", false).Find(&bookings).Error; err != nil {
		return total, fmt.Errorf("list pending bookings: %w", err)
	}
	for i := range bookings {
		s.BookingCreated(&bookings[i])
		total++
	}

	var contacts []db.ContactSubmission
	if err := s.db.Where("email_sent = ?", false).Find(&contacts).Error; err != nil {
		return total, fmt.Errorf("list pending contacts: %w", err)
	}
	for i := range contacts {
		s.ContactCreated(&contacts[i])
		total++
	}

	var subscribers []db.NewsletterSubscriber
	if err := s.db.Where("email_sent = ?", false).Find(&subscribers).Error; err != nil {
		return total, fmt.Errorf("list pending subscribers: %w", err)
	}
	for i := range subscribers {
		s.SubscriberCreated(&subscribers[i])
		total++
	}

	return total, nil
}

// safeSend delivers one message. Missing credentials skip the send and count
// as not-delivered without an error; transport failures are logged and
// returned as soft errors.
func (s *NotificationService) safeSend(subject, body string, to []string) (bool, error) {
	if !s.cfg.Configured() {
		log.Printf("mail not configured, skipping send of %q", subject)
		return false, nil
	}

	if err := s.mailer.Send(subject, body, s.cfg.FromEmail, to); err != nil {
		log.Printf("mail send %q failed: %v", subject, err)
		return false, err
	}
	return true, nil
}

// markSent flips email_sent on the stored record and clears any stale error.
func (s *NotificationService) markSent(model any, sent *bool, errText *string) {
	if err := s.db.Model(model).Updates(map[string]any{
		"email_sent":  true,
		"email_error": "",
	}).Error; err != nil {
		log.Printf("record email_sent flag: %v", err)
		return
	}
	*sent = true
	*errText = ""
}

// markFailed records the last failure reason; the email_sent flag stays false
// so the record remains eligible for a manual resend.
func (s *NotificationService) markFailed(model any, errText *string, cause error) {
	if err := s.db.Model(model).Update("email_error", cause.Error()).Error; err != nil {
		log.Printf("record email_error: %v", err)
		return
	}
	*errText = cause.Error()
}

func lastErr(errs ...error) error {
	var last error
	for _, err := range errs {
		if err != nil {
			last = err
		}
	}
	return last
}

var serviceTypeLabels = map[string]string{
	db.CategoryConsultancy: "Consultancy and Advisory",
	db.CategoryCounselling: "Counselling and Psychotherapy",
	db.CategoryTraining:    "Training",
}

var sessionModeLabels = map[string]string{
	db.SessionModeInPerson:  "In-Person",
	db.SessionModeOnline:    "Online",
	db.SessionModeTelephone: "Telephone",
}

func serviceTypeLabel(serviceType string) string {
	if label, ok := serviceTypeLabels[serviceType]; ok {
		return label
	}
	return serviceType
}

func sessionModeLabel(mode string) string {
	if label, ok := sessionModeLabels[mode]; ok {
		return label
	}
	return mode
}

func bookingAdminBody(booking *db.ServiceBooking) string {
	return strings.TrimSpace(fmt.Sprintf(`NEW BOOKING RECEIVED!

CLIENT DETAILS:
• Name: %s
• Email: %s
• Phone: %s
• Service: %s
• Mode: %s

APPOINTMENT DETAILS:
• Date: %s
• Time: %s

CLIENT'S CONCERN:
%s

Submitted: %s`,
		booking.FullName,
		booking.Email,
		booking.Phone,
		serviceTypeLabel(booking.ServiceType),
		sessionModeLabel(booking.SessionMode),
		booking.PreferredDate.Format("2006-01-02"),
		booking.PreferredTime.Format("3:04 PM"),
		booking.Description,
		booking.SubmittedAt.Format("2006-01-02 15:04"),
	))
}

func bookingClientBody(booking *db.ServiceBooking) string {
	return strings.TrimSpace(fmt.Sprintf(`Dear %s,

Thank you for choosing Mwasamwanda Well-being Services! Your appointment request has been received.

BOOKING SUMMARY:
• Service: %s
• Mode: %s
• Date: %s
• Time: %s
• Phone: %s
• Email: %s

We will contact you within 24 hours to confirm your appointment and provide further details.

If you have any questions, please don't hesitate to contact us.

Warm regards,
Mwasamwanda Well-being Services`,
		booking.FullName,
		serviceTypeLabel(booking.ServiceType),
		sessionModeLabel(booking.SessionMode),
		booking.PreferredDate.Format("2006-01-02"),
		booking.PreferredTime.Format("3:04 PM"),
		booking.Phone,
		booking.Email,
	))
}

func contactAdminBody(contact *db.ContactSubmission) string {
	return strings.TrimSpace(fmt.Sprintf(`New contact form submission received:

Name: %s
Email: %s
Subject: %s

Message:
%s

Submitted: %s

Please respond within 24 hours.`,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.SubmittedAt.Format("2006-01-02 15:04"),
	))
}

func subscriberWelcomeBody() string {
	return strings.TrimSpace(`Thank you for subscribing to our newsletter!

You'll now receive updates on our latest services, wellness tips, and special offers.

If you ever wish to unsubscribe, simply reply to this email.

Best regards,
Mwasamwanda Well-being Services Team`)
}

func subscriberAdminBody(subscriber *db.NewsletterSubscriber) string {
	return strings.TrimSpace(fmt.Sprintf(`New newsletter subscription:

Email: %s
Subscribed: %s`,
		subscriber.Email,
		subscriber.SubscribedAt.Format("2006-01-02 15:04"),
	))
}
