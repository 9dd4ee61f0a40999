// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/pagination"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/internal/validators"
	"github.com/MKhiriev/go-taxii/models"
)

// mapStoreError translates a repository error into the service taxonomy,
// keeping the original error in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrVersionConflict),
		errors.Is(err, store.ErrCollectionAliasExists),
		errors.Is(err, store.ErrAPIRootExists):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, pagination.ErrInvalidCursor):
		return fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	case errors.Is(err, validators.ErrInvalidObject),
		errors.Is(err, validators.ErrInvalidDocument),
		errors.Is(err, models.ErrInvalidVersionFilter):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
