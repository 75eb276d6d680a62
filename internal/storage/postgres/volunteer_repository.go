package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresVolunteerRepository implements VolunteerRepository using GORM
type PostgresVolunteerRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresVolunteerRepository creates a new PostgreSQL volunteer repository
func NewPostgresVolunteerRepository(db *gorm.DB) *PostgresVolunteerRepository {
	return &PostgresVolunteerRepository{
		db:  db,
		log: logger.Repository("volunteer"),
	}
}

func (r *PostgresVolunteerRepository) Create(a *volunteer.Application) error {
	r.log.Debug("creating new volunteer application", "name", a.Name, "email", a.Email)

	if err := a.Validate(); err != nil {
		r.log.Error("volunteer application validation failed", "error", err)
		return fmt.Errorf("volunteer application validation failed: %w", err)
	}

	if err := r.db.Create(a).Error; err != nil {
		r.log.Error("failed to create volunteer application", "error", err)
		return fmt.Errorf("failed to create volunteer application: %w", err)
	}

	r.log.Info("volunteer application created successfully", "application_id", a.ID)
	return nil
}

func (r *PostgresVolunteerRepository) GetByID(id string) (*volunteer.Application, error) {
	r.log.Debug("retrieving volunteer application by ID", "application_id", id)

	appID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid application ID format", "application_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid application ID", ErrNotFound)
	}

	var a volunteer.Application
	if err := r.db.First(&a, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("volunteer application not found", "application_id", id)
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve volunteer application", "application_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve volunteer application: %w", err)
	}

	return &a, nil
}

func (r *PostgresVolunteerRepository) List(filter ListFilter) ([]*volunteer.Application, error) {
	r.log.Debug("listing volunteer applications", "search", filter.Search)

	query := r.db.Order("created_at DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(organization) LIKE ?",
			like, like, like,
		)
	}

	var apps []*volunteer.Application
	if err := query.Find(&apps).Error; err != nil {
		r.log.Error("failed to list volunteer applications", "error", err)
		return nil, fmt.Errorf("failed to list volunteer applications: %w", err)
	}

	return apps, nil
}

func (r *PostgresVolunteerRepository) UpdateStatus(id string, status moderation.Status) (*volunteer.Application, error) {
	r.log.Debug("updating volunteer application status", "application_id", id, "status", status.String())

	a, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(a).Update("status", status).Error; err != nil {
		r.log.Error("failed to update volunteer application status", "application_id", id, "error", err)
		return nil, fmt.Errorf("failed to update volunteer application status: %w", err)
	}

	r.log.Info("volunteer application status updated", "application_id", id, "status", status.String())
	return a, nil
}

func (r *PostgresVolunteerRepository) Delete(id string) error {
	r.log.Debug("deleting volunteer application", "application_id", id)

	appID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid application ID format", "application_id", id, "error", err)
		return fmt.Errorf("%w: invalid application ID", ErrNotFound)
	}

	result := r.db.Delete(&volunteer.Application{}, "id = ?", appID)
	if result.Error != nil {
		r.log.Error("failed to delete volunteer application", "application_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete volunteer application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("volunteer application deleted successfully", "application_id", id)
	return nil
}
