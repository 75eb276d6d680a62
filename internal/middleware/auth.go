package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightpath-foundation/brightpath-api/internal/auth"
	"github.com/brightpath-foundation/brightpath-api/internal/response"
)

const (
	// ContextAccountID is the gin context key holding the signed-in staff account ID
	ContextAccountID = "account_id"
	// ContextAccountEmail is the gin context key holding the signed-in staff email
	ContextAccountEmail = "account_email"
)

// RequireAdmin returns a middleware that rejects requests without a valid
// staff bearer token
func RequireAdmin(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.UnauthorizedError(c, "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.Subject)
		c.Set(ContextAccountEmail, claims.Email)
		c.Next()
	}
}

// AccountID returns the signed-in staff account ID from the gin context
func AccountID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ContextAccountID)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
