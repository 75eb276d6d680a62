package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/gallery"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresGalleryRepository implements GalleryRepository using GORM
type PostgresGalleryRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresGalleryRepository creates a new PostgreSQL gallery repository
func NewPostgresGalleryRepository(db *gorm.DB) *PostgresGalleryRepository {
	return &PostgresGalleryRepository{
		db:  db,
		log: logger.Repository("gallery"),
	}
}

func (r *PostgresGalleryRepository) Create(img *gallery.Image) error {
	r.log.Debug("creating gallery image record", "title", img.Title, "object_key", img.ObjectKey)

	if err := img.Validate(); err != nil {
		r.log.Error("gallery image validation failed", "error", err)
		return fmt.Errorf("gallery image validation failed: %w", err)
	}

	if err := r.db.Create(img).Error; err != nil {
		r.log.Error("failed to create gallery image record", "error", err)
		return fmt.Errorf("failed to create gallery image record: %w", err)
	}

	r.log.Info("gallery image record created", "image_id", img.ID, "object_key", img.ObjectKey)
	return nil
}

func (r *PostgresGalleryRepository) GetByID(id string) (*gallery.Image, error) {
	r.log.Debug("retrieving gallery image by ID", "image_id", id)

	imgID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid image ID format", "image_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid image ID", ErrNotFound)
	}

	var img gallery.Image
	if err := r.db.First(&img, "id = ?", imgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve gallery image", "image_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve gallery image: %w", err)
	}

	return &img, nil
}

func (r *PostgresGalleryRepository) GetAll() ([]*gallery.Image, error) {
	r.log.Debug("retrieving all gallery images")

	var images []*gallery.Image
	if err := r.db.Order("created_at DESC").Find(&images).Error; err != nil {
		r.log.Error("failed to retrieve gallery images", "error", err)
		return nil, fmt.Errorf("failed to retrieve gallery images: %w", err)
	}

	return images, nil
}

func (r *PostgresGalleryRepository) Delete(id string) error {
	r.log.Debug("deleting gallery image record", "image_id", id)

	imgID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid image ID format", "image_id", id, "error", err)
		return fmt.Errorf("%w: invalid image ID", ErrNotFound)
	}

	result := r.db.Delete(&gallery.Image{}, "id = ?", imgID)
	if result.Error != nil {
		r.log.Error("failed to delete gallery image record", "image_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete gallery image record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("gallery image record deleted", "image_id", id)
	return nil
}
