package services

import (
	"github.com/charmbracelet/log"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/testimonial"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
	"github.com/brightpath-foundation/brightpath-api/internal/validation"
)

// ModerationService maneja el ciclo de revisión de los envíos públicos.
// Each kind declares its own status set; the service validates the target
// against it before anything touches the database.
type ModerationService struct {
	testimonialRepo  postgres.TestimonialRepository
	registrationRepo postgres.RegistrationRepository
	volunteerRepo    postgres.VolunteerRepository
	donationRepo     postgres.DonationRepository
	validator        validation.SubmissionValidation
	log              *log.Logger
}

// NewModerationService crea una nueva instancia del servicio de moderación
func NewModerationService(
	testimonialRepo postgres.TestimonialRepository,
	registrationRepo postgres.RegistrationRepository,
	volunteerRepo postgres.VolunteerRepository,
	donationRepo postgres.DonationRepository,
) *ModerationService {
	return &ModerationService{
		testimonialRepo:  testimonialRepo,
		registrationRepo: registrationRepo,
		volunteerRepo:    volunteerRepo,
		donationRepo:     donationRepo,
		validator:        validation.SubmissionValidation{},
		log:              logger.Service("moderation"),
	}
}

// SubmitTestimonial creates a pending testimonial from the public form
func (s *ModerationService) SubmitTestimonial(name, email, role, quote string, rating int) (*testimonial.Testimonial, error) {
	if err := s.validator.ValidateSubmitterName(name); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSubmitterEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidateRating(rating); err != nil {
		return nil, err
	}

	t := testimonial.New(name, email, role, quote, rating)
	if err := s.testimonialRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// SubmitVolunteerApplication creates a pending application from the public form
func (s *ModerationService) SubmitVolunteerApplication(a *volunteer.Application) error {
	if err := s.validator.ValidateSubmitterName(a.Name); err != nil {
		return err
	}
	if err := s.validator.ValidateSubmitterEmail(a.Email); err != nil {
		return err
	}

	a.Status = moderation.StatusPending
	return s.volunteerRepo.Create(a)
}

// SubmitDonationInterest creates a pending donation interest from the public form
func (s *ModerationService) SubmitDonationInterest(i *donation.Interest) error {
	if err := s.validator.ValidateSubmitterName(i.Name); err != nil {
		return err
	}
	if err := s.validator.ValidateSubmitterEmail(i.Email); err != nil {
		return err
	}

	i.Status = moderation.StatusPending
	return s.donationRepo.Create(i)
}

// TransitionTestimonial moves a testimonial to a status in its declared set
func (s *ModerationService) TransitionTestimonial(id string, target moderation.Status) (*testimonial.Testimonial, error) {
	if err := moderation.KindTestimonial.Validate(target); err != nil {
		s.log.Warn("transition refused", "kind", moderation.KindTestimonial.String(), "id", id, "target", target.String())
		return nil, err
	}
	return s.testimonialRepo.UpdateStatus(id, target)
}

// TransitionRegistration moves an event registration to a status in its declared set
func (s *ModerationService) TransitionRegistration(id string, target moderation.Status) (*registration.Registration, error) {
	if err := moderation.KindEventRegistration.Validate(target); err != nil {
		return nil, err
	}
	return s.registrationRepo.UpdateStatus(id, target)
}

// TransitionVolunteerApplication moves a volunteer application to a status in its declared set
func (s *ModerationService) TransitionVolunteerApplication(id string, target moderation.Status) (*volunteer.Application, error) {
	if err := moderation.KindVolunteerApplication.Validate(target); err != nil {
		return nil, err
	}
	return s.volunteerRepo.UpdateStatus(id, target)
}

// TransitionDonationInterest moves a donation interest to a status in its declared set
func (s *ModerationService) TransitionDonationInterest(id string, target moderation.Status) (*donation.Interest, error) {
	if err := moderation.KindDonationInterest.Validate(target); err != nil {
		return nil, err
	}
	return s.donationRepo.UpdateStatus(id, target)
}
