package donation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
)

// Interest represents a donation interest submitted through the public
// site. Amounts are stored in minor units (cents) to avoid floating point
// rounding.
type Interest struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string            `json:"name" gorm:"not null"`
	Email        string            `json:"email" gorm:"not null"`
	Phone        string            `json:"phone"`
	Organization string            `json:"organization"`
	Amount       int64             `json:"amount" gorm:"not null"`
	Currency     string            `json:"currency" gorm:"type:varchar(3);not null;default:'USD'"`
	DonationType string            `json:"donation_type"`
	Message      string            `json:"message"`
	Status       moderation.Status `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Interest) TableName() string {
	return "donation_interests"
}

// BeforeCreate sets a UUID before creating the record
func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// New builds a pending interest from a public form submission. When no
// currency is given the ledger assumes USD.
func New(name, email, phone, organization string, amount int64, currency, donationType, message string) *Interest {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	return &Interest{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        strings.TrimSpace(phone),
		Organization: strings.TrimSpace(organization),
		Amount:       amount,
		Currency:     currency,
		DonationType: strings.TrimSpace(donationType),
		Message:      strings.TrimSpace(message),
		Status:       moderation.StatusPending,
	}
}

// Validate checks if the donation interest data is valid
func (i *Interest) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(i.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if i.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if len(i.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code")
	}
	return nil
}

// MatchesSearch reports whether the interest matches a free-text admin
// search over name, email and organization
func (i *Interest) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Email), q) ||
		strings.Contains(strings.ToLower(i.Organization), q)
}
