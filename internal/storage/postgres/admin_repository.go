package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/admin"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresAdminRepository implements AdminRepository using GORM
type PostgresAdminRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresAdminRepository creates a new PostgreSQL admin account repository
func NewPostgresAdminRepository(db *gorm.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{
		db:  db,
		log: logger.Repository("admin"),
	}
}

func (r *PostgresAdminRepository) Create(a *admin.Account) error {
	r.log.Debug("creating admin account", "email", a.Email)

	if err := a.Validate(); err != nil {
		r.log.Error("admin account validation failed", "error", err)
		return fmt.Errorf("admin account validation failed: %w", err)
	}

	var existing admin.Account
	if err := r.db.Where("email = ?", strings.ToLower(a.Email)).First(&existing).Error; err == nil {
		r.log.Error("admin account with email already exists", "email", a.Email)
		return fmt.Errorf("admin account with email %s already exists", a.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Error("failed to check existing admin account", "email", a.Email, "error", err)
		return fmt.Errorf("failed to check existing admin account: %w", err)
	}

	a.Email = strings.ToLower(a.Email)
	if err := r.db.Create(a).Error; err != nil {
		r.log.Error("failed to create admin account", "error", err, "email", a.Email)
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	r.log.Info("admin account created successfully", "account_id", a.ID, "email", a.Email)
	return nil
}

func (r *PostgresAdminRepository) GetByID(id string) (*admin.Account, error) {
	r.log.Debug("retrieving admin account by ID", "account_id", id)

	accountID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid account ID format", "account_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid account ID", ErrNotFound)
	}

	var a admin.Account
	if err := r.db.First(&a, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve admin account", "account_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve admin account: %w", err)
	}

	return &a, nil
}

func (r *PostgresAdminRepository) GetByEmail(email string) (*admin.Account, error) {
	r.log.Debug("retrieving admin account by email", "email", email)

	var a admin.Account
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve admin account by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to retrieve admin account by email: %w", err)
	}

	return &a, nil
}

func (r *PostgresAdminRepository) Update(a *admin.Account) error {
	r.log.Debug("updating admin account", "account_id", a.ID)

	if err := a.Validate(); err != nil {
		r.log.Error("admin account validation failed", "error", err, "account_id", a.ID)
		return fmt.Errorf("admin account validation failed: %w", err)
	}

	result := r.db.Model(&admin.Account{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"name":          a.Name,
		"email":         strings.ToLower(a.Email),
		"password_hash": a.PasswordHash,
	})
	if result.Error != nil {
		r.log.Error("failed to update admin account", "account_id", a.ID, "error", result.Error)
		return fmt.Errorf("failed to update admin account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("admin account updated successfully", "account_id", a.ID)
	return nil
}
