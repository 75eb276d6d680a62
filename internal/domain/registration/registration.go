package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
)

// Registration represents one sign-up for an event. The event title is
// copied onto the record at creation time so later edits to the event do
// not rewrite historical registrations.
type Registration struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID      uuid.UUID         `json:"event_id" gorm:"type:uuid;not null;index"`
	EventTitle   string            `json:"event_title" gorm:"not null"`
	Name         string            `json:"name" gorm:"not null"`
	Email        string            `json:"email" gorm:"not null"`
	Phone        string            `json:"phone"`
	Organization string            `json:"organization"`
	Notes        string            `json:"notes"`
	Status       moderation.Status `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Registration) TableName() string {
	return "event_registrations"
}

// BeforeCreate sets a UUID before creating the record
func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Registrant carries the contact fields a visitor submits with the
// public registration form
type Registrant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Notes        string `json:"notes"`
}

// New creates a pending registration for the given event
func New(eventID uuid.UUID, eventTitle string, registrant Registrant) *Registration {
	return &Registration{
		ID:           uuid.New(),
		EventID:      eventID,
		EventTitle:   eventTitle,
		Name:         registrant.Name,
		Email:        registrant.Email,
		Phone:        registrant.Phone,
		Organization: registrant.Organization,
		Notes:        registrant.Notes,
		Status:       moderation.StatusPending,
		CreatedAt:    time.Now(),
	}
}

// Validate checks if the registration data is valid
func (r *Registration) Validate() error {
	if r.EventID == uuid.Nil {
		return fmt.Errorf("event_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// MatchesSearch reports whether the registration matches a free-text
// admin search over name, email and organization
func (r *Registration) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Email), q) ||
		strings.Contains(strings.ToLower(r.Organization), q)
}
