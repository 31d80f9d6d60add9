package db

import "gorm.io/gorm"

// SiteContent stores an admin-editable text fragment keyed by name, such as
// the hero tagline or the contact address lines.
type SiteContent struct {
	gorm.Model
	Key     string `gorm:"size:100;uniqueIndex;not null"`
	Value   string `gorm:"type:text"`
	Section string `gorm:"size:20;index"`
}

// TableName keeps the table name aligned with the content keys it stores.
func (SiteContent) TableName() string {
	return "site_contents"
}

const (
	// ContentSectionHero groups hero and header copy.
	ContentSectionHero = "hero"
	// ContentSectionService groups services page copy.
	ContentSectionService = "service"
	// ContentSectionContact groups contact details shown in the footer.
	ContentSectionContact = "contact"
)

const (
	// ContentKeySiteName is the site name shown in the header.
	ContentKeySiteName = "site_name"
	// ContentKeyHeroTagline is the short tagline under the site name.
	ContentKeyHeroTagline = "hero_tagline"
	// ContentKeyHeroTitle is the main hero heading.
	ContentKeyHeroTitle = "hero_title"
	// ContentKeyHeroDescription is the hero paragraph.
	ContentKeyHeroDescription = "hero_description"
	// ContentKeyServicesTitle is the services section heading.
	ContentKeyServicesTitle = "services_title"
	// ContentKeyServicesSubtitle is the services section subheading.
	ContentKeyServicesSubtitle = "services_subtitle"
	// ContentKeyPhoneNumber is the operator phone number.
	ContentKeyPhoneNumber = "phone_number"
	// ContentKeyEmailAddress is the public contact email address.
	ContentKeyEmailAddress = "email_address"
	// ContentKeyAddress is the office street address.
	ContentKeyAddress = "address"
	// ContentKeyHoursWeekdays is the weekday opening hours line.
	ContentKeyHoursWeekdays = "hours_weekdays"
	// ContentKeyHoursWeekend is the weekend opening hours line.
	ContentKeyHoursWeekend = "hours_weekend"
)
