package service

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrGuideSectionNotFound 在指定板块不存在时返回
	ErrGuideSectionNotFound = errors.New("guide section not found")
)

// GuideService resolves the three mandatory informational sections (vision,
// mission, core values) for the public site and backs their admin management.
type GuideService struct {
	db *gorm.DB
}

// GuideSectionInput carries the editable fields of a guide section.
type GuideSectionInput struct {
	Title    string
	Content  string
	ImageURL string
	IsActive bool
	Order    int
}

// NewGuideService constructs a GuideService.
func NewGuideService(gdb *gorm.DB) *GuideService {
	return &GuideService{db: gdb}
}

var guideDefaults = map[string]db.GuideSection{
	db.SectionTypeVision: {
		SectionType: db.SectionTypeVision,
		Title:       "Our Vision",
		Content:     "Being a strategic global leader in enhancing normative development and mental health through effective professional, evidence-based and innovative psychological interventions.",
		ImageURL:    "https://thumbs.dreamstime.com/b/our-vision-drawn-white-brick-wall-d-inscription-modern-illustation-blue-arrow-hand-icons-around-brickwall-89018617.jpg",
		IsActive:    true,
		Order:       1,
	},
	db.SectionTypeMission: {
		SectionType: db.SectionTypeMission,
		Title:       "Our Mission",
		Content:     "Developing and using effective professional, evidence-based and innovative psychological interventions through consultancy and advisory, counselling/psychotherapy and training to enhance normative development and mental health at individual and group levels across the lifespan.",
		ImageURL:    "https://www.energyquestmagazine.com/wp-content/uploads/2017/02/mission.jpg",
		IsActive:    true,
		Order:       2,
	},
	db.SectionTypeCoreValues: {
		SectionType: db.SectionTypeCoreValues,
		Title:       "Our Core Values",
		Content: "• Empowerment – Enabling people to exploit their potential as expected.\n" +
			"• Professionalism – Upholding competence, responsibility and accountability in service delivery.\n" +
			"• Innovation – Embracing creativity in service delivery.\n" +
			"• Client-centred – Doing all for the best for the clients' interests.",
		ImageURL: "https://www.v3co.com/wp-content/uploads/2023/10/Our-Core-Values-blog-header.png",
		IsActive: true,
		Order:    3,
	},
}

// DefaultGuideSections returns fresh, unpersisted copies of the built-in
// sections in display order. Served directly when storage is unreachable.
func DefaultGuideSections() []db.GuideSection {
	sections := make([]db.GuideSection, 0, len(db.RequiredSectionTypes))
	for _, sectionType := range db.RequiredSectionTypes {
		sections = append(sections, guideDefaults[sectionType])
	}
	return sections
}

// Resolve returns exactly one section per required type, ordered by display
// order then section type. Missing types are materialized from the defaults
// with get-or-create semantics; if storage fails at any point the built-in
// defaults are served instead. Resolve never fails.
func (s *GuideService) Resolve() []db.GuideSection {
	sections, err := s.resolve()
	if err != nil {
		log.Printf("guide sections unavailable, serving built-in defaults: %v", err)
		return DefaultGuideSections()
	}
	return sections
}

func (s *GuideService) resolve() ([]db.GuideSection, error) {
	sections, err := s.listActive()
	if err != nil {
		return nil, err
	}

	// Deactivating every section counts as empty: the sections come back via
	// get-or-create rather than staying hidden.
	if len(sections) == 0 {
		sections = sections[:0]
		for _, sectionType := range db.RequiredSectionTypes {
			row, err := s.materialize(sectionType)
			if err != nil {
				return nil, err
			}
			sections = append(sections, *row)
		}
		sortGuideSections(sections)
		return sections, nil
	}

	present := make(map[string]bool, len(sections))
	for _, section := range sections {
		present[section.SectionType] = true
	}

	for _, sectionType := range db.RequiredSectionTypes {
		if present[sectionType] {
			continue
		}
		row, err := s.materialize(sectionType)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *row)
	}

	sortGuideSections(sections)
	return sections, nil
}

func (s *GuideService) listActive() ([]db.GuideSection, error) {
	var sections []db.GuideSection
	if err := s.db.Where("is_active = ?", true).
		Order("display_order ASC, section_type ASC").
		Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("list guide sections: %w", err)
	}
	return sections, nil
}

// materialize inserts the default section for sectionType unless a row with
// that type already exists, then reads the surviving row back. The unique
// index on section_type arbitrates concurrent first reads: the losing
// creator's insert is a no-op and the re-read returns the winner's row.
func (s *GuideService) materialize(sectionType string) (*db.GuideSection, error) {
	section := guideDefaults[sectionType]
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_type"}},
		DoNothing: true,
	}).Create(&section).Error; err != nil {
		return nil, fmt.Errorf("materialize guide section %s: %w", sectionType, err)
	}

	var existing db.GuideSection
	if err := s.db.Where("section_type = ?", sectionType).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("reload guide section %s: %w", sectionType, err)
	}
	return &existing, nil
}

func sortGuideSections(sections []db.GuideSection) {
	slices.SortFunc(sections, func(a, b db.GuideSection) int {
		if diff := cmp.Compare(a.Order, b.Order); diff != 0 {
			return diff
		}
		return cmp.Compare(a.SectionType, b.SectionType)
	})
}

// List returns every guide section for the admin screen, active or not.
func (s *GuideService) List() ([]db.GuideSection, error) {
	var sections []db.GuideSection
	if err := s.db.Order("display_order ASC, section_type ASC").Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("list all guide sections: %w", err)
	}
	return sections, nil
}

// Update edits a guide section's content and display settings. The section
// type itself is fixed at creation.
func (s *GuideService) Update(id uint, input GuideSectionInput) (*db.GuideSection, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, &ValidationError{Message: "Title and content are required."}
	}

	var section db.GuideSection
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideSectionNotFound
		}
		return nil, fmt.Errorf("find guide section: %w", err)
	}

	section.Title = strings.TrimSpace(input.Title)
	section.Content = strings.TrimSpace(input.Content)
	section.ImageURL = strings.TrimSpace(input.ImageURL)
	section.IsActive = input.IsActive
	section.Order = input.Order

	if err := s.db.Save(&section).Error; err != nil {
		return nil, fmt.Errorf("update guide section: %w", err)
	}
	return &section, nil
}

// Delete removes a guide section permanently. The next Resolve call
// repopulates the gap with the built-in default.
func (s *GuideService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.GuideSection{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete guide section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuideSectionNotFound
	}
	return nil
}
