// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/xeipuuv/gojsonschema"
)

// Field names accepted by STIXObjectValidator.
const (
	// FieldSchema checks the envelope properties against stixEnvelopeSchema.
	FieldSchema = "schema"

	// FieldIDType checks that the id prefix equals the declared type.
	FieldIDType = "id_type"

	// FieldTimestamps checks that modified is not earlier than created.
	FieldTimestamps = "timestamps"
)

// stixEnvelopeSchema covers the common properties every STIX object carries.
// The full STIX schema set is not enforced. Length limits follow the storage
// columns.
const stixEnvelopeSchema = `{
  "type": "object",
  "required": ["id", "type"],
  "properties": {
    "id": {
      "type": "string",
      "maxLength": 100,
      "pattern": "^[a-z][a-z0-9-]*[a-z0-9]--[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
    },
    "type": {
      "type": "string",
      "minLength": 3,
      "maxLength": 50,
      "pattern": "^[a-z][a-z0-9-]*[a-z0-9]$"
    },
    "spec_version": {"type": "string", "enum": ["2.0", "2.1"]},
    "created": {"type": "string", "format": "date-time"},
    "modified": {"type": "string", "format": "date-time"}
  }
}`

// STIXObjectValidator validates submitted objects before they are stored.
type STIXObjectValidator struct {
	schema *gojsonschema.Schema
}

// NewSTIXObjectValidator compiles the envelope schema and returns the
// validator as the Validator interface.
func NewSTIXObjectValidator() (Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(stixEnvelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaUnavailable, err)
	}
	return &STIXObjectValidator{schema: schema}, nil
}

// Validate accepts a decoded object (map[string]any) or its raw JSON form.
func (v *STIXObjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case map[string]any:
		return v.validateObject(ctx, value, fields...)
	case json.RawMessage:
		return v.validateRaw(ctx, value, fields...)
	case []byte:
		return v.validateRaw(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *STIXObjectValidator) validateRaw(ctx context.Context, data []byte, fields ...string) error {
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil || decoded == nil {
		return fmt.Errorf("%w: %w", ErrInvalidObject, ErrMalformedObject)
	}
	return v.validateObject(ctx, decoded, fields...)
}

func (v *STIXObjectValidator) validateObject(_ context.Context, obj map[string]any, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSchema, FieldIDType, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldSchema:
			result, err := v.schema.Validate(gojsonschema.NewGoLoader(obj))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidObject, err)
			}
			if !result.Valid() {
				return fmt.Errorf("%w: %s", ErrInvalidObject, describeSchemaErrors(result.Errors()))
			}
		case FieldIDType:
			id, _ := obj["id"].(string)
			objectType, _ := obj["type"].(string)
			if objectType != "" && models.ObjectTypeFromID(id) != objectType {
				return fmt.Errorf("%w: %w: %s is not a %s", ErrInvalidObject, ErrIDTypeMismatch, id, objectType)
			}
		case FieldTimestamps:
			created, hasCreated := timestamp(obj, "created")
			modified, hasModified := timestamp(obj, "modified")
			if hasCreated && hasModified && modified.Before(created) {
				return fmt.Errorf("%w: %w", ErrInvalidObject, ErrTimestampOrder)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func timestamp(obj map[string]any, field string) (time.Time, bool) {
	value, ok := obj[field].(string)
	if !ok {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func describeSchemaErrors(errs []gojsonschema.ResultError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.String())
	}
	return strings.Join(messages, "; ")
}
