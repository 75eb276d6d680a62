package post

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Post represents a blog post written by staff. Unpublished posts are
// visible only from the admin dashboard.
type Post struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"not null;uniqueIndex"`
	Excerpt     string         `json:"excerpt"`
	Body        string         `json:"body" gorm:"not null"`
	AuthorName  string         `json:"author_name"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Published   bool           `json:"published" gorm:"not null;default:false"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate sets a UUID and slug before creating the record
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}

// Publish marks the post published and stamps the publication time once
func (p *Post) Publish(now time.Time) {
	p.Published = true
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// Unpublish hides the post from the public site
func (p *Post) Unpublish() {
	p.Published = false
}

// Validate checks if the post data is valid
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
