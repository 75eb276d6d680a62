package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/auth"
	"github.com/brightpath-foundation/brightpath-api/internal/middleware"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

type AuthHandler struct {
	authService *auth.Service
	adminRepo   postgres.AdminRepository
}

func NewAuthHandler(authService *auth.Service, adminRepo postgres.AdminRepository) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		adminRepo:   adminRepo,
	}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	token, account, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.UnauthorizedError(c, "Invalid email or password")
		case errors.Is(err, auth.ErrForbiddenDomain):
			response.ForbiddenError(c, "Email is outside the organization domain")
		default:
			response.InternalServerError(c, "Failed to sign in")
		}
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Signed in", gin.H{
		"token":   token,
		"account": account,
	})
}

// Me handles GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		response.UnauthorizedError(c, "Missing session")
		return
	}

	account, err := h.adminRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Account not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve account")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", account)
}

// ChangePassword handles POST /api/admin/me/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		response.UnauthorizedError(c, "Missing session")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(accountID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.UnauthorizedError(c, "Current password is incorrect")
		case errors.Is(err, postgres.ErrNotFound):
			response.NotFoundError(c, "Account not found")
		default:
			response.InternalServerError(c, "Failed to change password")
		}
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Password changed", nil)
}
