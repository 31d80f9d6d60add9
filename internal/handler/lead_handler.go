package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/service"
)

const invalidFormDataMessage = "Invalid form data. Please try again."

type bookingPayload struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceType   string `json:"serviceType"`
	SessionMode   string `json:"sessionMode"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Description   string `json:"description"`
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type footerContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type newsletterPayload struct {
	Email string `json:"email"`
}

// SubmitBooking handles the booking form. The record always outlives the
// notification attempt: dispatch runs after the create and cannot fail the
// response.
func (a *API) SubmitBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondResult(c, http.StatusBadRequest, false, invalidFormDataMessage)
		return
	}

	booking, err := a.bookings.Create(service.BookingInput{
		FullName:      payload.FullName,
		Email:         payload.Email,
		Phone:         payload.Phone,
		ServiceType:   payload.ServiceType,
		SessionMode:   payload.SessionMode,
		PreferredDate: payload.PreferredDate,
		PreferredTime: payload.PreferredTime,
		Description:   payload.Description,
	})
	if err != nil {
		if service.IsValidation(err) {
			respondResult(c, http.StatusBadRequest, false, err.Error())
			return
		}
		log.Printf("booking submission failed: %v", err)
		respondResult(c, http.StatusInternalServerError, false, "An unexpected error occurred. Please try again or contact us directly.")
		return
	}

	a.notifier.BookingCreated(booking)

	respondResult(c, http.StatusOK, true, "Booking submitted successfully! We will contact you soon to confirm your appointment.")
}

// SubmitContact handles the main contact form.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondResult(c, http.StatusBadRequest, false, invalidFormDataMessage)
		return
	}

	contact, err := a.contacts.Create(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		if service.IsValidation(err) {
			respondResult(c, http.StatusBadRequest, false, err.Error())
			return
		}
		log.Printf("contact submission failed: %v", err)
		respondResult(c, http.StatusInternalServerError, false, "An error occurred while sending your message. Please try again.")
		return
	}

	a.notifier.ContactCreated(contact)

	respondResult(c, http.StatusOK, true, "Message sent successfully! We will get back to you within 24 hours.")
}

// FooterContact handles the quick inquiry form in the site footer.
func (a *API) FooterContact(c *gin.Context) {
	var payload footerContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondResult(c, http.StatusBadRequest, false, invalidFormDataMessage)
		return
	}

	contact, err := a.contacts.CreateFooter(service.FooterContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	if err != nil {
		if service.IsValidation(err) {
			respondResult(c, http.StatusBadRequest, false, err.Error())
			return
		}
		log.Printf("footer contact submission failed: %v", err)
		respondResult(c, http.StatusInternalServerError, false, "An error occurred while submitting your message. Please try again.")
		return
	}

	a.notifier.ContactCreated(contact)

	respondResult(c, http.StatusOK, true, "Thank you for reaching out! We'll get back to you within 24 hours.")
}

// SubscribeNewsletter handles newsletter signups.
func (a *API) SubscribeNewsletter(c *gin.Context) {
	var payload newsletterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondResult(c, http.StatusBadRequest, false, "Invalid data. Please try again.")
		return
	}

	subscriber, err := a.newsletter.Subscribe(payload.Email)
	if err != nil {
		if service.IsValidation(err) {
			respondResult(c, http.StatusBadRequest, false, err.Error())
			return
		}
		log.Printf("newsletter subscription failed: %v", err)
		respondResult(c, http.StatusInternalServerError, false, "An error occurred. Please try again.")
		return
	}

	a.notifier.SubscriberCreated(subscriber)

	respondResult(c, http.StatusOK, true, "Thank you for subscribing! Welcome to our newsletter community.")
}
