package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account represents a staff member allowed into the admin dashboard
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Account) TableName() string {
	return "admin_accounts"
}

// BeforeCreate sets a UUID before creating the record
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SetPassword hashes and stores a new password
func (a *Account) SetPassword(plain string) error {
	if len(plain) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash
func (a *Account) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}

// InDomain reports whether the account's email belongs to the
// organization domain that gates the admin dashboard
func (a *Account) InDomain(domain string) bool {
	at := strings.LastIndex(a.Email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(a.Email[at+1:], domain)
}

// Validate checks if the account data is valid
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(a.Email, "@") {
		return fmt.Errorf("email must have a valid format")
	}
	if a.PasswordHash == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
