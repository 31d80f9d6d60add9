package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/handler"
)

// SetupRouter configures the Gin engine and all routes. templateGlob may be
// empty, in which case HTML templates are not loaded; tests that only touch
// JSON endpoints use that mode.
func SetupRouter(api *handler.API, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("mwasawell_session", store))

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	r.Static("/static", "./web/static")

	// Public pages
	r.GET("/", api.ShowHome)
	r.GET("/services", api.ShowServicesList)
	r.GET("/blogs", api.ShowBlogList)
	r.GET("/blogs/:id", api.ShowBlogDetail)

	// Public API
	publicAPI := r.Group("/api")
	{
		publicAPI.GET("/health", api.HealthCheck)
		publicAPI.GET("/guide-sections/", api.GetGuideSections)
		publicAPI.POST("/submit-booking/", api.SubmitBooking)
		publicAPI.POST("/submit-contact/", api.SubmitContact)
		publicAPI.POST("/footer-contact/", api.FooterContact)
		publicAPI.POST("/subscribe-newsletter/", api.SubscribeNewsletter)
	}

	// Admin backend
	admin := r.Group("/admin")
	{
		admin.POST("/login", handler.Login)
		admin.POST("/logout", handler.Logout)

		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.Dashboard)

			auth.GET("/bookings", api.ListBookings)
			auth.PUT("/bookings/:id/status", api.UpdateBookingStatus)

			auth.GET("/contacts", api.ListContacts)
			auth.PUT("/contacts/:id/read", api.MarkContactRead)

			auth.GET("/subscribers", api.ListSubscribers)
			auth.PUT("/subscribers/:id/deactivate", api.DeactivateSubscriber)

			auth.GET("/posts", api.AdminListPosts)
			auth.POST("/posts", api.AdminCreatePost)
			auth.PUT("/posts/:id", api.AdminUpdatePost)
			auth.DELETE("/posts/:id", api.AdminDeletePost)

			auth.GET("/services", api.AdminListServices)
			auth.POST("/services", api.AdminCreateService)
			auth.PUT("/services/:id", api.AdminUpdateService)
			auth.DELETE("/services/:id", api.AdminDeleteService)

			auth.GET("/guide-sections", api.AdminListGuideSections)
			auth.PUT("/guide-sections/:id", api.AdminUpdateGuideSection)
			auth.DELETE("/guide-sections/:id", api.AdminDeleteGuideSection)

			auth.GET("/site-content", api.GetSiteContent)
			auth.PUT("/site-content", api.UpdateSiteContent)

			auth.POST("/upload-image", api.UploadImage)
			auth.POST("/resend-notifications", api.ResendNotifications)
		}
	}

	return r
}
