package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwasawell/internal/db"
	"gorm.io/gorm"
)

// ErrBlogPostNotFound 在指定文章不存在时返回
var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogService provides the public blog listing and the admin CRUD behind it.
type BlogService struct {
	db *gorm.DB
}

// BlogPostInput carries the editable fields of a blog post.
type BlogPostInput struct {
	Title       string
	Excerpt     string
	Content     string
	ImageURL    string
	IsPublished bool
}

// NewBlogService constructs a BlogService.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// Recent returns the newest published posts, capped at limit.
func (s *BlogService) Recent(limit int) ([]db.BlogPost, error) {
	if limit <= 0 {
		limit = 6
	}

	var posts []db.BlogPost
	if err := s.db.Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	return posts, nil
}

// ListPublished returns all published posts, newest first.
func (s *BlogService) ListPublished() ([]db.BlogPost, error) {
	var posts []db.BlogPost
	if err := s.db.Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return posts, nil
}

// GetPublished returns a single published post for the public detail page.
func (s *BlogService) GetPublished(id uint) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.db.Where("is_published = ?", true).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// List returns every post for the admin screen, drafts included.
func (s *BlogService) List() ([]db.BlogPost, error) {
	var posts []db.BlogPost
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create persists a new post.
func (s *BlogService) Create(input BlogPostInput) (*db.BlogPost, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	post := db.BlogPost{
		Title:       strings.TrimSpace(input.Title),
		Excerpt:     strings.TrimSpace(input.Excerpt),
		Content:     input.Content,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsPublished: input.IsPublished,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// Update edits an existing post.
func (s *BlogService) Update(id uint, input BlogPostInput) (*db.BlogPost, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	var post db.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Excerpt = strings.TrimSpace(input.Excerpt)
	post.Content = input.Content
	post.ImageURL = strings.TrimSpace(input.ImageURL)
	post.IsPublished = input.IsPublished

	if err := s.db.Save(&post).Error; err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(id uint) error {
	result := s.db.Delete(&db.BlogPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

func validateBlogInput(input BlogPostInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return &ValidationError{Message: "Title is required."}
	}
	if strings.TrimSpace(input.Content) == "" {
		return &ValidationError{Message: "Content is required."}
	}
	return nil
}
