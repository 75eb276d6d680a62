package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/testimonial"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresTestimonialRepository implements TestimonialRepository using GORM
type PostgresTestimonialRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresTestimonialRepository creates a new PostgreSQL testimonial repository
func NewPostgresTestimonialRepository(db *gorm.DB) *PostgresTestimonialRepository {
	return &PostgresTestimonialRepository{
		db:  db,
		log: logger.Repository("testimonial"),
	}
}

func (r *PostgresTestimonialRepository) Create(t *testimonial.Testimonial) error {
	r.log.Debug("creating new testimonial", "name", t.Name, "rating", t.Rating)

	if err := t.Validate(); err != nil {
		r.log.Error("testimonial validation failed", "error", err)
		return fmt.Errorf("testimonial validation failed: %w", err)
	}

	if err := r.db.Create(t).Error; err != nil {
		r.log.Error("failed to create testimonial", "error", err)
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	r.log.Info("testimonial created successfully", "testimonial_id", t.ID)
	return nil
}

func (r *PostgresTestimonialRepository) GetByID(id string) (*testimonial.Testimonial, error) {
	r.log.Debug("retrieving testimonial by ID", "testimonial_id", id)

	tID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid testimonial ID format", "testimonial_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid testimonial ID", ErrNotFound)
	}

	var t testimonial.Testimonial
	if err := r.db.First(&t, "id = ?", tID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("testimonial not found", "testimonial_id", id)
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve testimonial", "testimonial_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve testimonial: %w", err)
	}

	return &t, nil
}

func (r *PostgresTestimonialRepository) List(filter ListFilter) ([]*testimonial.Testimonial, error) {
	r.log.Debug("listing testimonials", "search", filter.Search)

	query := r.db.Order("created_at DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var testimonials []*testimonial.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		r.log.Error("failed to list testimonials", "error", err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *PostgresTestimonialRepository) UpdateStatus(id string, status moderation.Status) (*testimonial.Testimonial, error) {
	r.log.Debug("updating testimonial status", "testimonial_id", id, "status", status.String())

	t, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(t).Update("status", status).Error; err != nil {
		r.log.Error("failed to update testimonial status", "testimonial_id", id, "error", err)
		return nil, fmt.Errorf("failed to update testimonial status: %w", err)
	}

	r.log.Info("testimonial status updated", "testimonial_id", id, "status", status.String())
	return t, nil
}

func (r *PostgresTestimonialRepository) Delete(id string) error {
	r.log.Debug("deleting testimonial", "testimonial_id", id)

	tID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid testimonial ID format", "testimonial_id", id, "error", err)
		return fmt.Errorf("%w: invalid testimonial ID", ErrNotFound)
	}

	result := r.db.Delete(&testimonial.Testimonial{}, "id = ?", tID)
	if result.Error != nil {
		r.log.Error("failed to delete testimonial", "testimonial_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("testimonial deleted successfully", "testimonial_id", id)
	return nil
}
