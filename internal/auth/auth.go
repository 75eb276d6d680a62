// Package auth issues and verifies the JWT bearer tokens that gate the
// admin dashboard. Only staff whose email belongs to the organization
// domain are issued tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brightpath-foundation/brightpath-api/internal/domain/admin"
	"github.com/brightpath-foundation/brightpath-api/internal/logger"
	"github.com/brightpath-foundation/brightpath-api/internal/storage/postgres"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match a staff account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbiddenDomain is returned when the account email is outside the
// organization domain.
var ErrForbiddenDomain = errors.New("email outside organization domain")

// ErrInvalidToken is returned when a bearer token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by admin session tokens
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Service authenticates staff accounts and manages session tokens
type Service struct {
	adminRepo postgres.AdminRepository
	secret    []byte
	tokenTTL  time.Duration
	domain    string
}

// NewService creates an authentication service
func NewService(adminRepo postgres.AdminRepository, secret string, tokenTTL time.Duration, domain string) *Service {
	return &Service{
		adminRepo: adminRepo,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		domain:    domain,
	}
}

// SignIn verifies the credentials and returns a signed session token
func (s *Service) SignIn(email, password string) (string, *admin.Account, error) {
	log := logger.Auth()

	account, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		log.Warn("sign-in failed, account not found", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if !account.CheckPassword(password) {
		log.Warn("sign-in failed, wrong password", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if !account.InDomain(s.domain) {
		log.Warn("sign-in refused, email outside organization domain", "email", email, "domain", s.domain)
		return "", nil, ErrForbiddenDomain
	}

	token, err := s.issueToken(account)
	if err != nil {
		log.Error("failed to issue token", "email", email, "error", err)
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("staff signed in", "account_id", account.ID, "email", account.Email)
	return token, account, nil
}

// ChangePassword verifies the current password and stores a new one
func (s *Service) ChangePassword(accountID, current, next string) error {
	log := logger.Auth()

	account, err := s.adminRepo.GetByID(accountID)
	if err != nil {
		return err
	}

	if !account.CheckPassword(current) {
		log.Warn("password change refused, wrong current password", "account_id", accountID)
		return ErrInvalidCredentials
	}

	if err := account.SetPassword(next); err != nil {
		return err
	}

	if err := s.adminRepo.Update(account); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	log.Info("password changed", "account_id", accountID)
	return nil
}

// VerifyToken parses and validates a bearer token, returning its claims
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) issueToken(account *admin.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: account.Email,
		Name:  account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
