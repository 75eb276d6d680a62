package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateRequired valida que un campo no esté vacío
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMinLength valida la longitud mínima de un string
func ValidateMinLength(value string, minLength int, fieldName string) error {
	if utf8.RuneCountInString(value) < minLength {
		return errors.New(fieldName + " must be at least " + strconv.Itoa(minLength) + " characters long")
	}
	return nil
}

// ValidateMaxLength valida la longitud máxima de un string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return errors.New(fieldName + " must be at most " + strconv.Itoa(maxLength) + " characters long")
	}
	return nil
}

// ValidateUUID valida que un string sea un UUID válido
func ValidateUUID(value, fieldName string) error {
	if _, err := uuid.Parse(value); err != nil {
		return errors.New(fieldName + " must be a valid UUID")
	}
	return nil
}

// ValidateEmail valida formato básico de email
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("email must have a valid format")
	}
	return nil
}

// ValidateRating valida que una calificación esté entre 1 y 5 estrellas
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// ValidateFutureDate valida que una fecha no esté en el pasado
func ValidateFutureDate(date time.Time, fieldName string) error {
	if date.Before(time.Now().Add(-24 * time.Hour)) {
		return errors.New(fieldName + " cannot be in the past")
	}
	return nil
}

// EventValidation contiene validaciones específicas para eventos
type EventValidation struct{}

// ValidateEventTitle valida el título de un evento
func (v EventValidation) ValidateEventTitle(title string) error {
	if err := ValidateRequired(title, "title"); err != nil {
		return err
	}
	if err := ValidateMinLength(title, 3, "title"); err != nil {
		return err
	}
	if err := ValidateMaxLength(title, 100, "title"); err != nil {
		return err
	}
	return nil
}

// ValidateEventDescription valida la descripción de un evento
func (v EventValidation) ValidateEventDescription(description string) error {
	if err := ValidateRequired(description, "description"); err != nil {
		return err
	}
	if err := ValidateMaxLength(description, 2000, "description"); err != nil {
		return err
	}
	return nil
}

// SubmissionValidation contiene validaciones comunes para formularios públicos
type SubmissionValidation struct{}

// ValidateSubmitterName valida el nombre del remitente
func (v SubmissionValidation) ValidateSubmitterName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	if err := ValidateMinLength(name, 2, "name"); err != nil {
		return err
	}
	if err := ValidateMaxLength(name, 100, "name"); err != nil {
		return err
	}
	return nil
}

// ValidateSubmitterEmail valida el email del remitente
func (v SubmissionValidation) ValidateSubmitterEmail(email string) error {
	if err := ValidateRequired(email, "email"); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return nil
}
