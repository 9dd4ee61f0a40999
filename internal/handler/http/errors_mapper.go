package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/models"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:         http.StatusNotFound,
	service.ErrPermissionDenied: http.StatusForbidden,
	service.ErrUnauthenticated:  http.StatusUnauthorized,
	service.ErrWrongPassword:    http.StatusUnauthorized,
	service.ErrInvalidCursor:    http.StatusBadRequest,
	service.ErrValidation:       http.StatusBadRequest,
	service.ErrConflict:         http.StatusConflict,
	service.ErrStorage:          http.StatusInternalServerError,

	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrInvalidParameter:           http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
}

// statusFromError maps err to a response status. Anonymous callers get 404
// for denied collections so they cannot learn which ones exist.
func statusFromError(err error, principal *models.Account) int {
	if principal == nil && errors.Is(err, service.ErrPermissionDenied) {
		return http.StatusNotFound
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
