package testimonial

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
)

// Testimonial represents a story submitted through the public site.
// Only approved testimonials appear on public pages.
type Testimonial struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string            `json:"name" gorm:"not null"`
	Email     string            `json:"email" gorm:"not null"`
	Role      string            `json:"role"`
	Quote     string            `json:"quote" gorm:"not null"`
	Rating    int               `json:"rating" gorm:"not null"`
	Status    moderation.Status `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Testimonial) TableName() string {
	return "testimonials"
}

// BeforeCreate sets a UUID before creating the record
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// New creates a pending testimonial
func New(name, email, role, quote string, rating int) *Testimonial {
	return &Testimonial{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		Quote:     quote,
		Rating:    rating,
		Status:    moderation.StatusPending,
		CreatedAt: time.Now(),
	}
}

// Validate checks if the testimonial data is valid
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return fmt.Errorf("quote is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

// MatchesSearch reports whether the testimonial matches a free-text
// admin search over name and email
func (t *Testimonial) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Email), q)
}
