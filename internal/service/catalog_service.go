package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrServiceNotFound 在指定服务不存在时返回
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceCategoryInvalid is returned for an unknown category value.
	ErrServiceCategoryInvalid = errors.New("invalid service category")
)

var serviceCategories = []string{
	db.CategoryConsultancy,
	db.CategoryCounselling,
	db.CategoryTraining,
}

// CatalogService manages the wellness services shown on the public site.
type CatalogService struct {
	db *gorm.DB
}

// ServiceInput carries the editable fields of a catalog service.
type ServiceInput struct {
	Name        string
	Category    string
	Description string
	Price       string
	IconClass   string
	IsActive    bool
	Features    []string
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	return &CatalogService{db: gdb}
}

// ListActive returns the services shown publicly, with their feature bullets.
func (s *CatalogService) ListActive() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Preload("Features").
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return services, nil
}

// List returns every service for the admin screen.
func (s *CatalogService) List() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Preload("Features").Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// Create persists a new service with its features.
func (s *CatalogService) Create(input ServiceInput) (*db.Service, error) {
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &ValidationError{Message: "Service name is required."}
	}

	svc := db.Service{
		Name:        strings.TrimSpace(input.Name),
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Price:       priceOrDefault(input.Price),
		IconClass:   iconOrDefault(input.IconClass),
		IsActive:    input.IsActive,
		Features:    buildFeatures(input.Features),
	}

	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &svc, nil
}

// Update edits a service and replaces its feature list.
func (s *CatalogService) Update(id uint, input ServiceInput) (*db.Service, error) {
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &ValidationError{Message: "Service name is required."}
	}

	var svc db.Service
	if err := s.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	svc.Name = strings.TrimSpace(input.Name)
	svc.Category = category
	svc.Description = strings.TrimSpace(input.Description)
	svc.Price = priceOrDefault(input.Price)
	svc.IconClass = iconOrDefault(input.IconClass)
	svc.IsActive = input.IsActive

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&svc).Error; err != nil {
			return fmt.Errorf("update service: %w", err)
		}
		if err := tx.Where("service_id = ?", svc.ID).Delete(&db.ServiceFeature{}).Error; err != nil {
			return fmt.Errorf("clear service features: %w", err)
		}
		features := buildFeatures(input.Features)
		for i := range features {
			features[i].ServiceID = svc.ID
		}
		if len(features) > 0 {
			if err := tx.Create(&features).Error; err != nil {
				return fmt.Errorf("create service features: %w", err)
			}
		}
		svc.Features = features
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

// Delete removes a service and its features.
func (s *CatalogService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&db.ServiceFeature{}).Error; err != nil {
			return fmt.Errorf("delete service features: %w", err)
		}
		result := tx.Delete(&db.Service{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete service: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrServiceNotFound
		}
		return nil
	})
}

func normalizeCategory(category string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	for _, candidate := range serviceCategories {
		if normalized == candidate {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrServiceCategoryInvalid, category)
}

func priceOrDefault(price string) string {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return "Contact for pricing"
	}
	return trimmed
}

func iconOrDefault(icon string) string {
	trimmed := strings.TrimSpace(icon)
	if trimmed == "" {
		return "bi-heart-pulse"
	}
	return trimmed
}

func buildFeatures(names []string) []db.ServiceFeature {
	features := make([]db.ServiceFeature, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		features = append(features, db.ServiceFeature{Name: trimmed})
	}
	return features
}
