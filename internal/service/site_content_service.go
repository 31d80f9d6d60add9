package service

import (
	"fmt"
	"strings"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteContentService reads and updates the admin-editable text fragments
// rendered on the public pages.
type SiteContentService struct {
	db *gorm.DB
}

// SiteContentInput is one key/value pair to store.
type SiteContentInput struct {
	Key     string
	Value   string
	Section string
}

// NewSiteContentService constructs a SiteContentService.
func NewSiteContentService(gdb *gorm.DB) *SiteContentService {
	return &SiteContentService{db: gdb}
}

// siteContentDefaults backs pages before the seed script has run.
var siteContentDefaults = map[string]string{
	db.ContentKeySiteName:         "Mwasamwanda Wellness",
	db.ContentKeyHeroTagline:      "Empowerment, Enhanced Productivity, Happy Life",
	db.ContentKeyHeroTitle:        "Enhancing Normative Development and Mental Health Across the Lifespan",
	db.ContentKeyServicesTitle:    "Professional Psychological Services",
	db.ContentKeyServicesSubtitle: "Evidence-based interventions designed to enhance normative development and mental health across the lifespan",
}

// GetAll returns every stored fragment as a key → value map, with defaults
// filled in for missing core keys.
func (s *SiteContentService) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(siteContentDefaults))
	for key, value := range siteContentDefaults {
		result[key] = value
	}

	var records []db.SiteContent
	if err := s.db.Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site content: %w", err)
	}

	for _, record := range records {
		if strings.TrimSpace(record.Value) != "" {
			result[record.Key] = record.Value
		}
	}
	return result, nil
}

// Set stores a single fragment, creating or updating as needed.
func (s *SiteContentService) Set(key, value, section string) error {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return &ValidationError{Message: "Content key is required."}
	}
	return upsertContent(s.db, db.SiteContent{
		Key:     trimmedKey,
		Value:   value,
		Section: strings.TrimSpace(section),
	})
}

// SetMany stores a batch of fragments in one transaction.
func (s *SiteContentService) SetMany(items []SiteContentInput) error {
	for _, item := range items {
		if strings.TrimSpace(item.Key) == "" {
			return &ValidationError{Message: "Content key is required."}
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := upsertContent(tx, db.SiteContent{
				Key:     strings.TrimSpace(item.Key),
				Value:   item.Value,
				Section: strings.TrimSpace(item.Section),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update site content: %w", err)
	}
	return nil
}

func upsertContent(tx *gorm.DB, content db.SiteContent) error {
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      content.Value,
			"section":    content.Section,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&content).Error; err != nil {
		return fmt.Errorf("upsert content %s: %w", content.Key, err)
	}
	return nil
}
