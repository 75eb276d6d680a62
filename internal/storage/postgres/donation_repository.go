package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresDonationRepository implements DonationRepository using GORM
type PostgresDonationRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresDonationRepository creates a new PostgreSQL donation repository
func NewPostgresDonationRepository(db *gorm.DB) *PostgresDonationRepository {
	return &PostgresDonationRepository{
		db:  db,
		log: logger.Repository("donation"),
	}
}

func (r *PostgresDonationRepository) Create(i *donation.Interest) error {
	r.log.Debug("creating new donation interest", "name", i.Name, "amount", i.Amount, "currency", i.Currency)

	if err := i.Validate(); err != nil {
		r.log.Error("donation interest validation failed", "error", err)
		return fmt.Errorf("donation interest validation failed: %w", err)
	}

	if err := r.db.Create(i).Error; err != nil {
		r.log.Error("failed to create donation interest", "error", err)
		return fmt.Errorf("failed to create donation interest: %w", err)
	}

	r.log.Info("donation interest created successfully", "interest_id", i.ID)
	return nil
}

func (r *PostgresDonationRepository) GetByID(id string) (*donation.Interest, error) {
	r.log.Debug("retrieving donation interest by ID", "interest_id", id)

	interestID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid interest ID format", "interest_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid interest ID", ErrNotFound)
	}

	var i donation.Interest
	if err := r.db.First(&i, "id = ?", interestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("donation interest not found", "interest_id", id)
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve donation interest", "interest_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve donation interest: %w", err)
	}

	return &i, nil
}

func (r *PostgresDonationRepository) List(filter ListFilter) ([]*donation.Interest, error) {
	r.log.Debug("listing donation interests", "search", filter.Search)

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

	var interests []*donation.Interest
	if err := query.Find(&interests).Error; err != nil {
		r.log.Error("failed to list donation interests", "error", err)
		return nil, fmt.Errorf("failed to list donation interests: %w", err)
	}

	return interests, nil
}

func (r *PostgresDonationRepository) UpdateStatus(id string, status moderation.Status) (*donation.Interest, error) {
	r.log.Debug("updating donation interest status", "interest_id", id, "status", status.String())

	i, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(i).Update("status", status).Error; err != nil {
		r.log.Error("failed to update donation interest status", "interest_id", id, "error", err)
		return nil, fmt.Errorf("failed to update donation interest status: %w", err)
	}

	r.log.Info("donation interest status updated", "interest_id", id, "status", status.String())
	return i, nil
}

func (r *PostgresDonationRepository) Delete(id string) error {
	r.log.Debug("deleting donation interest", "interest_id", id)

	interestID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid interest ID format", "interest_id", id, "error", err)
		return fmt.Errorf("%w: invalid interest ID", ErrNotFound)
	}

	result := r.db.Delete(&donation.Interest{}, "id = ?", interestID)
	if result.Error != nil {
		r.log.Error("failed to delete donation interest", "interest_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete donation interest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("donation interest deleted successfully", "interest_id", id)
	return nil
}
