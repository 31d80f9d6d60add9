package handler

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}

// ShowHome renders the landing page with the guide sections, the active
// services and the latest posts.
func (a *API) ShowHome(c *gin.Context) {
	content, err := a.content.GetAll()
	if err != nil {
		log.Printf("load site content: %v", err)
	}

	services, err := a.catalog.ListActive()
	if err != nil {
		log.Printf("load services for home: %v", err)
	}

	posts, err := a.blogs.Recent(6)
	if err != nil {
		log.Printf("load recent posts for home: %v", err)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":         content["site_name"],
		"content":       content,
		"guideSections": a.guide.Resolve(),
		"services":      services,
		"posts":         posts,
	})
}

// ShowServicesList renders the services page.
func (a *API) ShowServicesList(c *gin.Context) {
	content, err := a.content.GetAll()
	if err != nil {
		log.Printf("load site content: %v", err)
	}

	services, err := a.catalog.ListActive()
	if err != nil {
		log.Printf("load services: %v", err)
		c.HTML(http.StatusInternalServerError, "services_list.html", gin.H{
			"title": "Our Services",
			"error": "Services are temporarily unavailable.",
		})
		return
	}

	c.HTML(http.StatusOK, "services_list.html", gin.H{
		"title":    "Our Services",
		"content":  content,
		"services": services,
	})
}

// ShowBlogList renders the published posts.
func (a *API) ShowBlogList(c *gin.Context) {
	posts, err := a.blogs.ListPublished()
	if err != nil {
		log.Printf("load blog list: %v", err)
		c.HTML(http.StatusInternalServerError, "blog_list.html", gin.H{
			"title": "Blog",
			"error": "Posts are temporarily unavailable.",
		})
		return
	}

	c.HTML(http.StatusOK, "blog_list.html", gin.H{
		"title": "Blog",
		"posts": posts,
	})
}

// ShowBlogDetail renders a single published post with its markdown content
// converted to sanitized HTML.
func (a *API) ShowBlogDetail(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.HTML(http.StatusNotFound, "blog_list.html", gin.H{
			"title": "Blog",
			"error": "Post not found.",
		})
		return
	}

	post, err := a.blogs.GetPublished(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			c.HTML(http.StatusNotFound, "blog_list.html", gin.H{
				"title": "Blog",
				"error": "Post not found.",
			})
			return
		}
		log.Printf("load post %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "blog_list.html", gin.H{
			"title": "Blog",
			"error": "Posts are temporarily unavailable.",
		})
		return
	}

	htmlContent, err := renderMarkdown(post.Content)
	if err != nil {
		log.Printf("render post %d: %v", id, err)
		htmlContent = template.HTML("<p>This post cannot be displayed right now.</p>")
	}

	c.HTML(http.StatusOK, "blog_detail.html", gin.H{
		"title":   post.Title,
		"post":    post,
		"content": htmlContent,
	})
}

// HealthCheck reports liveness and headline record counts. A storage failure
// degrades the status instead of panicking the probe.
func (a *API) HealthCheck(c *gin.Context) {
	var bookings, contacts, subscribers int64
	err := a.db.Model(&db.ServiceBooking{}).Count(&bookings).Error
	if err == nil {
		err = a.db.Model(&db.ContactSubmission{}).Count(&contacts).Error
	}
	if err == nil {
		err = a.db.Model(&db.NewsletterSubscriber{}).Count(&subscribers).Error
	}
	if err != nil {
		log.Printf("health check storage failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "degraded",
			"time":   time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"bookings":    bookings,
		"contacts":    contacts,
		"subscribers": subscribers,
	})
}
