package main

import (
	"fmt"
	"log"

	"github.com/mwasawell/internal/config"
	"github.com/mwasawell/internal/db"
	"github.com/mwasawell/internal/service"
)

// Seeds the editable site content, the service catalog and the guide sections
// so a fresh database renders a complete public site. Safe to run repeatedly:
// content fragments are upserted and services are only created when the
// catalog is empty.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("database init failed: ", err)
	}

	seedSiteContent()
	seedServices()
	seedGuideSections()

	fmt.Println("seed complete")
}

func seedSiteContent() {
	items := []service.SiteContentInput{
		{Key: db.ContentKeySiteName, Value: "Mwasamwanda Wellness", Section: db.ContentSectionHero},
		{Key: "site_title", Value: "Mwasamwanda - Mental Health Services", Section: db.ContentSectionHero},
		{Key: db.ContentKeyHeroTagline, Value: "Empowerment, Enhanced Productivity, Happy Life", Section: db.ContentSectionHero},
		{Key: db.ContentKeyHeroTitle, Value: "Enhancing Normative Development and Mental Health Across the Lifespan", Section: db.ContentSectionHero},
		{Key: db.ContentKeyHeroDescription, Value: "Mwasamwanda Well-being Services facilitates normative development and mental health through professional, evidence-based psychological interventions for individuals and groups.", Section: db.ContentSectionHero},
		{Key: db.ContentKeyServicesTitle, Value: "Professional Psychological Services", Section: db.ContentSectionService},
		{Key: db.ContentKeyServicesSubtitle, Value: "Evidence-based interventions designed to enhance normative development and mental health across the lifespan", Section: db.ContentSectionService},
		{Key: "contact_title", Value: "Contact Mwasamwanda Well-being Services", Section: db.ContentSectionContact},
		{Key: "contact_subtitle", Value: "Get in touch with us to discuss your mental health needs or schedule a consultation.", Section: db.ContentSectionContact},
		{Key: db.ContentKeyPhoneNumber, Value: "0758283613", Section: db.ContentSectionContact},
		{Key: db.ContentKeyEmailAddress, Value: "mwasawellservices@gmail.com", Section: db.ContentSectionContact},
		{Key: db.ContentKeyAddress, Value: "Southern House, Murang'a Road, Off Mot Avenue, Fourth Floor, Nairobi, KENYA", Section: db.ContentSectionContact},
		{Key: db.ContentKeyHoursWeekdays, Value: "Mon-Fri: 8:00 AM - 6:00 PM", Section: db.ContentSectionContact},
		{Key: db.ContentKeyHoursWeekend, Value: "Sat: 9:00 AM - 2:00 PM", Section: db.ContentSectionContact},
	}

	content := service.NewSiteContentService(db.DB)
	if err := content.SetMany(items); err != nil {
		log.Fatal("seed site content failed: ", err)
	}
	fmt.Printf("seeded %d site content fragments\n", len(items))
}

func seedServices() {
	var count int64
	db.DB.Model(&db.Service{}).Count(&count)
	if count > 0 {
		fmt.Println("services already present, skipping catalog seed")
		return
	}

	catalog := service.NewCatalogService(db.DB)
	seeds := []service.ServiceInput{
		{
			Name:        "Consultancy & Advisory",
			Category:    db.CategoryConsultancy,
			Description: "Professional psychological consultancy including policy formulation, program planning, research design, and psychological assessment.",
			Price:       "KSh 5,000",
			IconClass:   "bi-clipboard-data",
			IsActive:    true,
			Features: []string{
				"Policy formulation",
				"Program planning and evaluation",
				"Research design",
				"Psychological assessment",
			},
		},
		{
			Name:        "Counselling & Psychotherapy",
			Category:    db.CategoryCounselling,
			Description: "Professional therapy services across the lifespan to help individuals deal with issues limiting normative development and mental health.",
			Price:       "KSh 3,500/session",
			IconClass:   "bi-chat-heart",
			IsActive:    true,
			Features: []string{
				"Individual counselling",
				"Group therapy",
				"Family counselling",
				"Trauma support",
			},
		},
		{
			Name:        "Training Programs",
			Category:    db.CategoryTraining,
			Description: "Comprehensive training programs to build capacity in organizations, institutions, and communities on normative development and mental health.",
			Price:       "KSh 8,000 - 15,000",
			IconClass:   "bi-mortarboard",
			IsActive:    true,
			Features: []string{
				"Workplace mental health",
				"Community capacity building",
				"Institutional workshops",
			},
		},
	}

	for _, seed := range seeds {
		if _, err := catalog.Create(seed); err != nil {
			log.Fatal("seed service failed: ", err)
		}
	}
	fmt.Printf("seeded %d services\n", len(seeds))
}

func seedGuideSections() {
	guide := service.NewGuideService(db.DB)
	sections := guide.Resolve()
	fmt.Printf("guide sections present: %d\n", len(sections))
}
