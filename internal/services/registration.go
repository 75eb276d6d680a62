package services

import (
	"github.com/charmbracelet/log"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
	"github.com/brightpath-foundation/brightpath-api/internal/validation"
)

// RegistrationService maneja la lógica de negocio de inscripciones a eventos
type RegistrationService struct {
	registrationRepo postgres.RegistrationRepository
	eventRepo        postgres.EventRepository
	validator        validation.SubmissionValidation
	log              *log.Logger
}

// NewRegistrationService crea una nueva instancia del servicio de inscripciones
func NewRegistrationService(registrationRepo postgres.RegistrationRepository, eventRepo postgres.EventRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		validator:        validation.SubmissionValidation{},
		log:              logger.Service("registration"),
	}
}

// Register validates the registrant and creates a pending registration.
// Capacity is enforced by the repository inside a single transaction, so a
// successful return means exactly one registration row and one counter
// increment were committed together.
func (s *RegistrationService) Register(eventID string, registrant registration.Registrant) (*registration.Registration, error) {
	if err := s.validator.ValidateSubmitterName(registrant.Name); err != nil {
		s.log.Debug("registrant rejected", "event_id", eventID, "error", err)
		return nil, err
	}
	if err := s.validator.ValidateSubmitterEmail(registrant.Email); err != nil {
		s.log.Debug("registrant rejected", "event_id", eventID, "error", err)
		return nil, err
	}

	return s.registrationRepo.Register(eventID, registrant)
}

// EventAvailability describes the registration state of one event as shown
// on the public site
type EventAvailability struct {
	EventID        string `json:"event_id"`
	SpotsRemaining int    `json:"spots_remaining"`
	Unlimited      bool   `json:"unlimited"`
	Full           bool   `json:"full"`
}

// Availability reports remaining capacity for an event
func (s *RegistrationService) Availability(eventID string) (*EventAvailability, error) {
	ev, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	remaining, unlimited := ev.SpotsRemaining()
	return &EventAvailability{
		EventID:        ev.ID.String(),
		SpotsRemaining: remaining,
		Unlimited:      unlimited,
		Full:           ev.IsFull(),
	}, nil
}
