package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/service"
)

type guideSectionView struct {
	ID          uint   `json:"id"`
	SectionType string `json:"section_type"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
}

type guideSectionPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

func guideSectionViews(sections []db.GuideSection) []guideSectionView {
	views := make([]guideSectionView, 0, len(sections))
	for _, section := range sections {
		views = append(views, guideSectionView{
			ID:          section.ID,
			SectionType: section.SectionType,
			Title:       section.Title,
			Content:     section.Content,
			ImageURL:    section.ImageURL,
			IsActive:    section.IsActive,
			Order:       section.Order,
		})
	}
	return views
}

// GetGuideSections serves the vision, mission and core values blocks for the
// public site. The response always contains one section per type.
func (a *API) GetGuideSections(c *gin.Context) {
	sections := a.guide.Resolve()
	views := guideSectionViews(sections)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sections": views,
		"count":    len(views),
	})
}

// AdminListGuideSections returns every guide section, inactive included.
func (a *API) AdminListGuideSections(c *gin.Context) {
	sections, err := a.guide.List()
	if err != nil {
		log.Printf("list guide sections: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load guide sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": guideSectionViews(sections)})
}

// AdminUpdateGuideSection edits one guide section.
func (a *API) AdminUpdateGuideSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid section ID")
		return
	}

	var payload guideSectionPayload
	if !bindJSON(c, &payload, "Invalid request data") {
		return
	}

	section, err := a.guide.Update(id, service.GuideSectionInput{
		Title:    payload.Title,
		Content:  payload.Content,
		ImageURL: payload.ImageURL,
		IsActive: payload.IsActive,
		Order:    payload.Order,
	})
	if err != nil {
		switch {
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrGuideSectionNotFound):
			respondError(c, http.StatusNotFound, "Guide section not found")
		default:
			log.Printf("update guide section %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update guide section")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": guideSectionViews([]db.GuideSection{*section})[0]})
}

// AdminDeleteGuideSection removes a guide section. The default copy returns on
// the next public read.
func (a *API) AdminDeleteGuideSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid section ID")
		return
	}

	if err := a.guide.Delete(id); err != nil {
		if errors.Is(err, service.ErrGuideSectionNotFound) {
			respondError(c, http.StatusNotFound, "Guide section not found")
			return
		}
		log.Printf("delete guide section %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete guide section")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guide section deleted"})
}
