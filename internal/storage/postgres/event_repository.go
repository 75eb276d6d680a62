package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(ev *event.Event) error {
	r.log.Debug("creating new event", "title", ev.Title)

	if err := ev.Validate(); err != nil {
		r.log.Error("event validation failed", "error", err)
		return fmt.Errorf("event validation failed: %w", err)
	}

	if err := r.db.Create(ev).Error; err != nil {
		r.log.Error("failed to create event", "error", err, "title", ev.Title)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("event created successfully", "event_id", ev.ID, "title", ev.Title)
	return nil
}

func (r *PostgresEventRepository) GetByID(id string) (*event.Event, error) {
	r.log.Debug("retrieving event by ID", "event_id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid event ID format", "event_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid event ID", ErrNotFound)
	}

	var ev event.Event
	if err := r.db.First(&ev, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("event not found", "event_id", id)
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve event", "event_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}

	return &ev, nil
}

func (r *PostgresEventRepository) GetAll() ([]*event.Event, error) {
	r.log.Debug("retrieving all events")

	var events []*event.Event
	if err := r.db.Order("date ASC").Find(&events).Error; err != nil {
		r.log.Error("failed to retrieve events", "error", err)
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	r.log.Debug("events retrieved successfully", "count", len(events))
	return events, nil
}

func (r *PostgresEventRepository) GetUpcoming(limit int) ([]*event.Event, error) {
	r.log.Debug("retrieving upcoming events", "limit", limit)

	query := r.db.Where("date > ?", time.Now()).Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []*event.Event
	if err := query.Find(&events).Error; err != nil {
		r.log.Error("failed to retrieve upcoming events", "error", err)
		return nil, fmt.Errorf("failed to retrieve upcoming events: %w", err)
	}

	return events, nil
}

func (r *PostgresEventRepository) Update(ev *event.Event) error {
	r.log.Debug("updating event", "event_id", ev.ID)

	if err := ev.Validate(); err != nil {
		r.log.Error("event validation failed", "error", err, "event_id", ev.ID)
		return fmt.Errorf("event validation failed: %w", err)
	}

	result := r.db.Model(&event.Event{}).Where("id = ?", ev.ID).Updates(map[string]interface{}{
		"title":         ev.Title,
		"description":   ev.Description,
		"date":          ev.Date,
		"location":      ev.Location,
		"category":      ev.Category,
		"tags":          ev.Tags,
		"max_attendees": ev.MaxAttendees,
		"featured":      ev.Featured,
	})
	if result.Error != nil {
		r.log.Error("failed to update event", "event_id", ev.ID, "error", result.Error)
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.log.Info("event updated successfully", "event_id", ev.ID)
	return nil
}

// Delete removes an event together with its registrations so no orphaned
// sign-ups are left behind.
func (r *PostgresEventRepository) Delete(id string) error {
	r.log.Debug("deleting event", "event_id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid event ID format", "event_id", id, "error", err)
		return fmt.Errorf("%w: invalid event ID", ErrNotFound)
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&event.Event{}, "id = ?", eventID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Delete(&registration.Registration{}, "event_id = ?", eventID).Error; err != nil {
			return fmt.Errorf("failed to delete event registrations: %w", err)
		}

		return nil
	})
	if err != nil {
		r.log.Error("failed to delete event", "event_id", id, "error", err)
		return err
	}

	r.log.Info("event deleted successfully", "event_id", id)
	return nil
}
