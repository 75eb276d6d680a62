package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/services"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type TestimonialHandler struct {
	moderationService *services.ModerationService
	testimonialRepo   postgres.TestimonialRepository
}

func NewTestimonialHandler(moderationService *services.ModerationService, testimonialRepo postgres.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{
		moderationService: moderationService,
		testimonialRepo:   testimonialRepo,
	}
}

type SubmitTestimonialRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"`
	Quote  string `json:"quote" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

// Submit handles POST /api/testimonials. New submissions start pending and
// stay hidden from the public list until an admin approves them.
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	t, err := h.moderationService.SubmitTestimonial(req.Name, req.Email, req.Role, req.Quote, req.Rating)
	if err != nil {
		response.InternalServerError(c, "Failed to submit testimonial")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Testimonial received", t)
}

// GetApproved handles GET /api/testimonials
func (h *TestimonialHandler) GetApproved(c *gin.Context) {
	approved := moderation.StatusApproved
	testimonials, err := h.testimonialRepo.List(postgres.ListFilter{Status: &approved})
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve testimonials")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

// List handles GET /api/admin/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	filter, ok := listFilterFromQuery(c, moderation.KindTestimonial)
	if !ok {
		return
	}

	testimonials, err := h.testimonialRepo.List(filter)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve testimonials")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}

// UpdateStatus handles PATCH /api/admin/testimonials/:id/status
func (h *TestimonialHandler) UpdateStatus(c *gin.Context) {
	target, ok := bindTargetStatus(c, moderation.KindTestimonial)
	if !ok {
		return
	}

	t, err := h.moderationService.TransitionTestimonial(c.Param("id"), target)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Testimonial not found")
			return
		}
		response.InternalServerError(c, "Failed to update testimonial status")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Testimonial status updated", t)
}

// Delete handles DELETE /api/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Testimonial not found")
			return
		}
		response.InternalServerError(c, "Failed to delete testimonial")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Testimonial deleted", nil)
}
