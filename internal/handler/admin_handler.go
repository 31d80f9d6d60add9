package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an administrator and starts a session.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	var user db.User
	if err := db.DB.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "username": user.Username})
}

// Logout clears the session.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthRequired rejects requests without an authenticated session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Dashboard reports the headline counts for the admin landing screen.
func (a *API) Dashboard(c *gin.Context) {
	var bookingCount, pendingCount, contactCount, unreadCount, subscriberCount, postCount int64

	a.db.Model(&db.ServiceBooking{}).Count(&bookingCount)
	a.db.Model(&db.ServiceBooking{}).Where("status = ?", db.BookingStatusPending).Count(&pendingCount)
	a.db.Model(&db.ContactSubmission{}).Count(&contactCount)
	a.db.Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&unreadCount)
	a.db.Model(&db.NewsletterSubscriber{}).Where("is_active = ?", true).Count(&subscriberCount)
	a.db.Model(&db.BlogPost{}).Count(&postCount)

	c.JSON(http.StatusOK, gin.H{
		"bookings":           bookingCount,
		"pending_bookings":   pendingCount,
		"contacts":           contactCount,
		"unread_contacts":    unreadCount,
		"active_subscribers": subscriberCount,
		"posts":              postCount,
	})
}

// ListBookings returns bookings with optional status and search filters.
func (a *API) ListBookings(c *gin.Context) {
	bookings, err := a.bookings.List(service.BookingFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		log.Printf("list bookings: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type bookingStatusPayload struct {
	Status string `json:"status"`
}

// UpdateBookingStatus moves a booking through its workflow.
func (a *API) UpdateBookingStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var payload bookingStatusPayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	booking, err := a.bookings.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingStatusInvalid):
			respondError(c, http.StatusBadRequest, "Invalid booking status")
		case errors.Is(err, service.ErrBookingNotFound):
			respondError(c, http.StatusNotFound, "Booking not found")
		default:
			log.Printf("update booking %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListContacts returns contact submissions, optionally unread only.
func (a *API) ListContacts(c *gin.Context) {
	contacts, err := a.contacts.List(service.ContactFilter{
		UnreadOnly: c.Query("unread") == "true",
	})
	if err != nil {
		log.Printf("list contacts: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load contact submissions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// MarkContactRead flags a submission as handled.
func (a *API) MarkContactRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := a.contacts.MarkRead(id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact submission not found")
			return
		}
		log.Printf("mark contact %d read: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update contact submission")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// ListSubscribers returns the mailing list.
func (a *API) ListSubscribers(c *gin.Context) {
	subscribers, err := a.newsletter.List()
	if err != nil {
		log.Printf("list subscribers: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load subscribers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// DeactivateSubscriber opts a subscriber out.
func (a *API) DeactivateSubscriber(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid subscriber ID")
		return
	}

	if err := a.newsletter.Deactivate(id); err != nil {
		respondError(c, http.StatusNotFound, "Subscriber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deactivated"})
}

type blogPostPayload struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

func (p blogPostPayload) toInput() service.BlogPostInput {
	return service.BlogPostInput{
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		ImageURL:    p.ImageURL,
		IsPublished: p.IsPublished,
	}
}

// AdminListPosts returns every post, drafts included.
func (a *API) AdminListPosts(c *gin.Context) {
	posts, err := a.blogs.List()
	if err != nil {
		log.Printf("list posts: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// AdminCreatePost creates a blog post.
func (a *API) AdminCreatePost(c *gin.Context) {
	var payload blogPostPayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	post, err := a.blogs.Create(payload.toInput())
	if err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("create post: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// AdminUpdatePost edits a blog post.
func (a *API) AdminUpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var payload blogPostPayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	post, err := a.blogs.Update(id, payload.toInput())
	if err != nil {
		switch {
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBlogPostNotFound):
			respondError(c, http.StatusNotFound, "Post not found")
		default:
			log.Printf("update post %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// AdminDeletePost removes a blog post.
func (a *API) AdminDeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := a.blogs.Delete(id); err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("delete post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

type servicePayload struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	IconClass   string   `json:"icon_class"`
	IsActive    bool     `json:"is_active"`
	Features    []string `json:"features"`
}

func (p servicePayload) toInput() service.ServiceInput {
	return service.ServiceInput{
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		IconClass:   p.IconClass,
		IsActive:    p.IsActive,
		Features:    p.Features,
	}
}

// AdminListServices returns every catalog service.
func (a *API) AdminListServices(c *gin.Context) {
	services, err := a.catalog.List()
	if err != nil {
		log.Printf("list services: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// AdminCreateService adds a catalog service.
func (a *API) AdminCreateService(c *gin.Context) {
	var payload servicePayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	svc, err := a.catalog.Create(payload.toInput())
	if err != nil {
		if service.IsValidation(err) || errors.Is(err, service.ErrServiceCategoryInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("create service: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// AdminUpdateService edits a catalog service.
func (a *API) AdminUpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var payload servicePayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	svc, err := a.catalog.Update(id, payload.toInput())
	if err != nil {
		switch {
		case service.IsValidation(err) || errors.Is(err, service.ErrServiceCategoryInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, "Service not found")
		default:
			log.Printf("update service %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// AdminDeleteService removes a catalog service.
func (a *API) AdminDeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := a.catalog.Delete(id); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "Service not found")
			return
		}
		log.Printf("delete service %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// GetSiteContent returns every editable text fragment with defaults applied.
func (a *API) GetSiteContent(c *gin.Context) {
	content, err := a.content.GetAll()
	if err != nil {
		log.Printf("load site content: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load site content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

type siteContentPayload struct {
	Items []struct {
		Key     string `json:"key"`
		Value   string `json:"value"`
		Section string `json:"section"`
	} `json:"items"`
}

// UpdateSiteContent stores a batch of text fragments.
func (a *API) UpdateSiteContent(c *gin.Context) {
	var payload siteContentPayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	items := make([]service.SiteContentInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, service.SiteContentInput{
			Key:     item.Key,
			Value:   item.Value,
			Section: item.Section,
		})
	}

	if err := a.content.SetMany(items); err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("update site content: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to update site content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Site content updated"})
}

// ResendNotifications re-dispatches emails for records that never got theirs.
func (a *API) ResendNotifications(c *gin.Context) {
	attempted, err := a.notifier.ResendPending()
	if err != nil {
		log.Printf("resend notifications: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to resend notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempted": attempted})
}
