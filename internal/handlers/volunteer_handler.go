package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/volunteer"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/services"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type VolunteerHandler struct {
	moderationService *services.ModerationService
	volunteerRepo     postgres.VolunteerRepository
}

func NewVolunteerHandler(moderationService *services.ModerationService, volunteerRepo postgres.VolunteerRepository) *VolunteerHandler {
	return &VolunteerHandler{
		moderationService: moderationService,
		volunteerRepo:     volunteerRepo,
	}
}

type SubmitVolunteerRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	Organization string   `json:"organization"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Message      string   `json:"message"`
}

// Submit handles POST /api/volunteers
func (h *VolunteerHandler) Submit(c *gin.Context) {
	var req SubmitVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	application := volunteer.New(req.Name, req.Email, req.Phone, req.Organization, req.Interests, req.Availability, req.Message)
	if err := h.moderationService.SubmitVolunteerApplication(application); err != nil {
		response.InternalServerError(c, "Failed to submit application")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Application received", application)
}

// List handles GET /api/admin/volunteers
func (h *VolunteerHandler) List(c *gin.Context) {
	filter, ok := listFilterFromQuery(c, moderation.KindVolunteerApplication)
	if !ok {
		return
	}

	applications, err := h.volunteerRepo.List(filter)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve applications")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"applications": applications,
		"count":        len(applications),
	})
}

// UpdateStatus handles PATCH /api/admin/volunteers/:id/status
func (h *VolunteerHandler) UpdateStatus(c *gin.Context) {
	target, ok := bindTargetStatus(c, moderation.KindVolunteerApplication)
	if !ok {
		return
	}

	application, err := h.moderationService.TransitionVolunteerApplication(c.Param("id"), target)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Application not found")
			return
		}
		response.InternalServerError(c, "Failed to update application status")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Application status updated", application)
}

// Delete handles DELETE /api/admin/volunteers/:id
func (h *VolunteerHandler) Delete(c *gin.Context) {
	if err := h.volunteerRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Application not found")
			return
		}
		response.InternalServerError(c, "Failed to delete application")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Application deleted", nil)
}
