package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/event"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// PostgresRegistrationRepository implements RegistrationRepository using GORM
type PostgresRegistrationRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresRegistrationRepository creates a new PostgreSQL registration repository
func NewPostgresRegistrationRepository(db *gorm.DB) *PostgresRegistrationRepository {
	return &PostgresRegistrationRepository{
		db:  db,
		log: logger.Repository("registration"),
	}
}

// Register creates a pending registration and increments the event's
// attendee counter as one transaction. The event row is locked for the
// duration so two concurrent sign-ups cannot both read the same counter
// and overbook the last spot.
func (r *PostgresRegistrationRepository) Register(eventID string, registrant registration.Registrant) (*registration.Registration, error) {
	r.log.Debug("registering for event", "event_id", eventID, "email", registrant.Email)

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		r.log.Error("invalid event ID format", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("%w: invalid event ID", ErrNotFound)
	}

	var created *registration.Registration
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var ev event.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ev, "id = ?", eventUUID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock event row: %w", err)
		}

		if ev.IsFull() {
			return ErrCapacityExceeded
		}

		reg := registration.New(ev.ID, ev.Title, registrant)
		if err := reg.Validate(); err != nil {
			return fmt.Errorf("registration validation failed: %w", err)
		}

		if err := tx.Create(reg).Error; err != nil {
			return fmt.Errorf("failed to create registration: %w", err)
		}

		if err := tx.Model(&event.Event{}).
			Where("id = ?", ev.ID).
			UpdateColumn("current_attendees", gorm.Expr("current_attendees + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment attendee count: %w", err)
		}

		created = reg
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			r.log.Warn("registration rejected, event is full", "event_id", eventID)
		} else {
			r.log.Error("failed to register for event", "event_id", eventID, "error", err)
		}
		return nil, err
	}

	r.log.Info("registration created successfully", "registration_id", created.ID, "event_id", eventID)
	return created, nil
}

func (r *PostgresRegistrationRepository) GetByID(id string) (*registration.Registration, error) {
	r.log.Debug("retrieving registration by ID", "registration_id", id)

	regID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid registration ID format", "registration_id", id, "error", err)
		return nil, fmt.Errorf("%w: invalid registration ID", ErrNotFound)
	}

	var reg registration.Registration
	if err := r.db.First(&reg, "id = ?", regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("registration not found", "registration_id", id)
			return nil, ErrNotFound
		}
		r.log.Error("failed to retrieve registration", "registration_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve registration: %w", err)
	}

	return &reg, nil
}

func (r *PostgresRegistrationRepository) GetByEventID(eventID string) ([]*registration.Registration, error) {
	r.log.Debug("retrieving registrations by event ID", "event_id", eventID)

	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		r.log.Error("invalid event ID format", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	var regs []*registration.Registration
	if err := r.db.Where("event_id = ?", eventUUID).Order("created_at DESC").Find(&regs).Error; err != nil {
		r.log.Error("failed to retrieve registrations by event ID", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to retrieve registrations by event ID: %w", err)
	}

	r.log.Debug("registrations retrieved successfully", "event_id", eventID, "count", len(regs))
	return regs, nil
}

func (r *PostgresRegistrationRepository) List(filter ListFilter) ([]*registration.Registration, error) {
	r.log.Debug("listing registrations", "search", filter.Search)

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

	var regs []*registration.Registration
	if err := query.Find(&regs).Error; err != nil {
		r.log.Error("failed to list registrations", "error", err)
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return regs, nil
}

func (r *PostgresRegistrationRepository) UpdateStatus(id string, status moderation.Status) (*registration.Registration, error) {
	r.log.Debug("updating registration status", "registration_id", id, "status", status.String())

	reg, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(reg).Update("status", status).Error; err != nil {
		r.log.Error("failed to update registration status", "registration_id", id, "error", err)
		return nil, fmt.Errorf("failed to update registration status: %w", err)
	}

	r.log.Info("registration status updated", "registration_id", id, "status", status.String())
	return reg, nil
}

// Delete removes a registration and decrements the owning event's
// attendee counter in the same transaction. The counter is clamped at
// zero in case of prior drift.
func (r *PostgresRegistrationRepository) Delete(id string) error {
	r.log.Debug("deleting registration", "registration_id", id)

	regID, err := uuid.Parse(id)
	if err != nil {
		r.log.Error("invalid registration ID format", "registration_id", id, "error", err)
		return fmt.Errorf("%w: invalid registration ID", ErrNotFound)
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var reg registration.Registration
		if err := tx.First(&reg, "id = ?", regID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to retrieve registration: %w", err)
		}

		if err := tx.Delete(&reg).Error; err != nil {
			return fmt.Errorf("failed to delete registration: %w", err)
		}

		if err := tx.Model(&event.Event{}).
			Where("id = ?", reg.EventID).
			UpdateColumn("current_attendees", gorm.Expr("GREATEST(current_attendees - 1, 0)")).Error; err != nil {
			return fmt.Errorf("failed to decrement attendee count: %w", err)
		}

		return nil
	})
	if err != nil {
		r.log.Error("failed to delete registration", "registration_id", id, "error", err)
		return err
	}

	r.log.Info("registration deleted successfully", "registration_id", id)
	return nil
}
