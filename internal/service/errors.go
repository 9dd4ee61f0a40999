package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-taxii/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidCursor    = errors.New("invalid cursor")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrStorage          = errors.New("storage failure")

	ErrConfigValidation = errors.New("configuration validation failed")
	ErrWrongPassword    = errors.New("wrong username or password")
	ErrInvalidToken     = errors.New("token is expired or invalid")
	ErrEmptyBatch       = errors.New("no objects provided")
	ErrAdminRequired    = errors.New("administrator rights required")
)

// ConfigValidationError lists every unresolved reference of a sync
// document. Nothing is written when it is returned.
type ConfigValidationError struct {
	Violations []models.ReferenceViolation
}

func (e *ConfigValidationError) Error() string {
	reasons := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		reasons = append(reasons, v.String())
	}
	return fmt.Sprintf("%s: %s", ErrConfigValidation, strings.Join(reasons, "; "))
}

// Is makes errors.Is(err, ErrConfigValidation) hold.
func (e *ConfigValidationError) Is(target error) bool {
	return target == ErrConfigValidation
}
