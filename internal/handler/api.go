package handler

import (
	"github.com/mwasawell/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	guide      *service.GuideService
	bookings   *service.BookingService
	contacts   *service.ContactService
	newsletter *service.NewsletterService
	blogs      *service.BlogService
	catalog    *service.CatalogService
	content    *service.SiteContentService
	notifier   *service.NotificationService
	uploadDir  string
	uploadURL  string
}

// NewAPI constructs a handler set with shared services. The notifier is
// injected so tests can wire a recording mailer behind it.
func NewAPI(gdb *gorm.DB, notifier *service.NotificationService, uploadDir, uploadURL string) *API {
	return &API{
		db:         gdb,
		guide:      service.NewGuideService(gdb),
		bookings:   service.NewBookingService(gdb),
		contacts:   service.NewContactService(gdb),
		newsletter: service.NewNewsletterService(gdb),
		blogs:      service.NewBlogService(gdb),
		catalog:    service.NewCatalogService(gdb),
		content:    service.NewSiteContentService(gdb),
		notifier:   notifier,
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
	}
}
