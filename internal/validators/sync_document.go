// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Field names accepted by SyncDocumentValidator.
const (
	// FieldEntries runs the struct-tag rules of every document entry.
	FieldEntries = "entries"

	// FieldDuplicates rejects two entries describing the same entity.
	FieldDuplicates = "duplicates"
)

// SyncDocumentValidator validates a parsed sync document before any
// database access.
type SyncDocumentValidator struct {
	validate *validator.Validate
}

// NewSyncDocumentValidator returns a validator reporting fields by their
// YAML names.
func NewSyncDocumentValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &SyncDocumentValidator{validate: validate}
}

// Validate accepts models.SyncDocument and *models.SyncDocument.
func (v *SyncDocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncDocument:
		return v.validateDocument(ctx, value, fields...)
	case *models.SyncDocument:
		return v.validateDocument(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SyncDocumentValidator) validateDocument(ctx context.Context, doc models.SyncDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries, FieldDuplicates}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if err := v.validate.StructCtx(ctx, doc); err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidDocument, describeFieldErrors(err))
			}
		case FieldDuplicates:
			if err := checkDuplicates(doc); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func describeFieldErrors(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		namespace := strings.TrimPrefix(fe.Namespace(), "SyncDocument.")
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: failed %s=%s", namespace, fe.Tag(), fe.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: failed %s", namespace, fe.Tag()))
	}
	return strings.Join(messages, "; ")
}

func checkDuplicates(doc models.SyncDocument) error {
	services := make(map[string]struct{}, len(doc.Services))
	for _, s := range doc.Services {
		if _, ok := services[s.ID]; ok {
			return fmt.Errorf("%w: service %q", ErrDuplicateEntity, s.ID)
		}
		services[s.ID] = struct{}{}
	}

	type rootAlias struct {
		root  uuid.UUID
		alias string
	}

	names := make(map[string]struct{})
	ids := make(map[uuid.UUID]struct{})
	aliases := make(map[rootAlias]uuid.UUID)
	for _, c := range doc.Collections {
		if c.IsModern() {
			id, err := uuid.Parse(c.ID)
			if err != nil {
				return fmt.Errorf("collection id %q: %w", c.ID, err)
			}
			if _, ok := ids[id]; ok {
				return fmt.Errorf("%w: collection %s", ErrDuplicateEntity, id)
			}
			ids[id] = struct{}{}

			root, err := uuid.Parse(c.APIRootID)
			if err != nil || c.Alias == nil || *c.Alias == "" {
				continue
			}
			key := rootAlias{root: root, alias: *c.Alias}
			if other, ok := aliases[key]; ok {
				return fmt.Errorf("%w: alias %q of collections %s and %s in api root %s",
					ErrDuplicateEntity, key.alias, other, id, root)
			}
			aliases[key] = id
			continue
		}
		if _, ok := names[c.Name]; ok {
			return fmt.Errorf("%w: collection %q", ErrDuplicateEntity, c.Name)
		}
		names[c.Name] = struct{}{}
	}

	accounts := make(map[string]struct{}, len(doc.Accounts))
	for _, a := range doc.Accounts {
		if _, ok := accounts[a.Username]; ok {
			return fmt.Errorf("%w: account %q", ErrDuplicateEntity, a.Username)
		}
		accounts[a.Username] = struct{}{}
	}

	return nil
}
