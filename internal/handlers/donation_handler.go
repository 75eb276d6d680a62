package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/donation"
	"github.com/brightpath-foundation/brightpath-api/internal/domain/moderation"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/services"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type DonationHandler struct {
	moderationService *services.ModerationService
	donationRepo      postgres.DonationRepository
}

func NewDonationHandler(moderationService *services.ModerationService, donationRepo postgres.DonationRepository) *DonationHandler {
	return &DonationHandler{
		moderationService: moderationService,
		donationRepo:      donationRepo,
	}
}

type SubmitDonationRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
	Currency     string `json:"currency"`
	DonationType string `json:"donation_type"`
	Message      string `json:"message"`
}

// Submit handles POST /api/donations
func (h *DonationHandler) Submit(c *gin.Context) {
	var req SubmitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	interest := donation.New(req.Name, req.Email, req.Phone, req.Organization, req.Amount, req.Currency, req.DonationType, req.Message)
	if err := h.moderationService.SubmitDonationInterest(interest); err != nil {
		response.InternalServerError(c, "Failed to submit donation interest")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Donation interest received", interest)
}

// List handles GET /api/admin/donations
func (h *DonationHandler) List(c *gin.Context) {
	filter, ok := listFilterFromQuery(c, moderation.KindDonationInterest)
	if !ok {
		return
	}

	interests, err := h.donationRepo.List(filter)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve donation interests")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"donations": interests,
		"count":     len(interests),
	})
}

// UpdateStatus handles PATCH /api/admin/donations/:id/status
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	target, ok := bindTargetStatus(c, moderation.KindDonationInterest)
	if !ok {
		return
	}

	interest, err := h.moderationService.TransitionDonationInterest(c.Param("id"), target)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Donation interest not found")
			return
		}
		response.InternalServerError(c, "Failed to update donation status")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Donation status updated", interest)
}

// Delete handles DELETE /api/admin/donations/:id
func (h *DonationHandler) Delete(c *gin.Context) {
	if err := h.donationRepo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Donation interest not found")
			return
		}
		response.InternalServerError(c, "Failed to delete donation interest")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Donation interest deleted", nil)
}
