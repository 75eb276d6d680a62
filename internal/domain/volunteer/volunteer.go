package volunteer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
)

// Application represents a volunteer application submitted through the
// public site and reviewed by staff.
type Application struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string            `json:"name" gorm:"not null"`
	Email        string            `json:"email" gorm:"not null"`
	Phone        string            `json:"phone"`
	Organization string            `json:"organization"`
	Interests    pq.StringArray    `json:"interests" gorm:"type:text[]"`
	Availability string            `json:"availability"`
	Message      string            `json:"message"`
	Status       moderation.Status `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Application) TableName() string {
	return "volunteer_applications"
}

// BeforeCreate sets a UUID before creating the record
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// New builds a pending application from a public form submission
func New(name, email, phone, organization string, interests []string, availability, message string) *Application {
	return &Application{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        strings.TrimSpace(phone),
		Organization: strings.TrimSpace(organization),
		Interests:    pq.StringArray(interests),
		Availability: strings.TrimSpace(availability),
		Message:      strings.TrimSpace(message),
		Status:       moderation.StatusPending,
	}
}

// Validate checks if the application data is valid
func (a *Application) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// MatchesSearch reports whether the application matches a free-text
// admin search over name, email and organization
func (a *Application) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Email), q) ||
		strings.Contains(strings.ToLower(a.Organization), q)
}
