package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/registration"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/services"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
	moderationService   *services.ModerationService
	registrationRepo    postgres.RegistrationRepository
	log                 *log.Logger
}

func NewRegistrationHandler(
	registrationService *services.RegistrationService,
	moderationService *services.ModerationService,
	registrationRepo postgres.RegistrationRepository,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		moderationService:   moderationService,
		registrationRepo:    registrationRepo,
		log:                 logger.Handler("registration"),
	}
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Notes        string `json:"notes"`
}

// Register handles POST /api/events/:event_id/register.
// A fully booked event is reported distinctly from other failures so the
// form can tell the visitor the event is full rather than "try again".
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	reg, err := h.registrationService.Register(c.Param("event_id"), registration.Registrant{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrNotFound):
			response.NotFoundError(c, "Event not found")
		case errors.Is(err, postgres.ErrCapacityExceeded):
			response.ConflictError(c, "This event is fully booked")
		default:
			h.log.Error("registration failed", "event_id", c.Param("event_id"), "error", err)
			response.InternalServerError(c, "Failed to register for event")
		}
		return
	}

	h.log.Info("registration received", "registration_id", reg.ID, "event_id", c.Param("event_id"))
	response.SuccessResponse(c, http.StatusCreated, "Registration received", reg)
}

// Availability handles GET /api/events/:event_id/availability
func (h *RegistrationHandler) Availability(c *gin.Context) {
	availability, err := h.registrationService.Availability(c.Param("event_id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to check availability")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", availability)
}

// List handles GET /api/admin/registrations
func (h *RegistrationHandler) List(c *gin.Context) {
	filter, ok := listFilterFromQuery(c, moderation.KindEventRegistration)
	if !ok {
		return
	}

	regs, err := h.registrationRepo.List(filter)
	if err != nil {
		h.log.Error("failed to list registrations", "error", err)
		response.InternalServerError(c, "Failed to retrieve registrations")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"registrations": regs,
		"count":         len(regs),
	})
}

// ListByEvent handles GET /api/admin/events/:event_id/registrations
func (h *RegistrationHandler) ListByEvent(c *gin.Context) {
	regs, err := h.registrationRepo.GetByEventID(c.Param("event_id"))
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve registrations")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"registrations": regs,
		"count":         len(regs),
	})
}

// UpdateStatus handles PATCH /api/admin/registrations/:id/status
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	target, ok := bindTargetStatus(c, moderation.KindEventRegistration)
	if !ok {
		return
	}

	reg, err := h.moderationService.TransitionRegistration(c.Param("id"), target)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Registration not found")
			return
		}
		response.InternalServerError(c, "Failed to update registration status")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Registration status updated", reg)
}

// Delete handles DELETE /api/admin/registrations/:id.
// The owning event's attendee count is decremented in the same transaction.
func (h *RegistrationHandler) Delete(c *gin.Context) {
	if err := h.registrationRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Registration not found")
			return
		}
		response.InternalServerError(c, "Failed to delete registration")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Registration deleted", nil)
}
