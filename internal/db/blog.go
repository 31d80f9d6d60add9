package db

import "gorm.io/gorm"

// BlogPost is an article shown on the public blog pages. Content is markdown
// and is rendered to sanitized HTML at request time.
type BlogPost struct {
	gorm.Model
	Title       string `gorm:"size:200;not null"`
	Excerpt     string `gorm:"type:text"`
	Content     string `gorm:"type:text"`
	ImageURL    string `gorm:"size:500"`
	IsPublished bool   `gorm:"default:true"`
}
