// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultSpecVersion is assumed for objects that do not declare spec_version.
const DefaultSpecVersion = "2.1"

// Column widths of opentaxii_stixobject and opentaxii_job_detail, in
// characters.
const (
	MaxSTIXIDLength          = 100
	MaxSTIXTypeLength        = 50
	MaxSTIXSpecVersionLength = 10
)

// STIXObject is a single immutable version of a content object stored in a
// collection. (CollectionID, ID, Version) is unique.
type STIXObject struct {
	// PK is the surrogate key of the row.
	PK           uuid.UUID
	ID           string
	CollectionID uuid.UUID
	Type         string
	SpecVersion  string
	DateAdded    time.Time
	Version      time.Time

	// Payload holds the object without its id, type and spec_version
	// properties; those live in dedicated columns.
	Payload json.RawMessage
}

// TableName returns the name of the database table
// associated with the STIXObject model.
func (o STIXObject) TableName() string {
	return "opentaxii_stixobject"
}

// MarshalJSON renders the object the way clients submitted it:
// the stored payload with id, type and spec_version restored.
func (o STIXObject) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if len(o.Payload) > 0 {
		if err := json.Unmarshal(o.Payload, &fields); err != nil {
			return nil, fmt.Errorf("error decoding stored payload of %s: %w", o.ID, err)
		}
	}

	for key, value := range map[string]string{"id": o.ID, "type": o.Type, "spec_version": o.SpecVersion} {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = encoded
	}

	return json.Marshal(fields)
}

// AddResult reports what add_object did with a submitted version.
type AddResult int

const (
	// Created means a new version row was written.
	Created AddResult = iota
	// AlreadyExists means an identical version was already stored.
	AlreadyExists
)

func (r AddResult) String() string {
	if r == AlreadyExists {
		return "already_exists"
	}
	return "created"
}

// ManifestEntry is the metadata-only view of a stored object version.
type ManifestEntry struct {
	ID        string    `json:"id"`
	DateAdded time.Time `json:"date_added"`
	Version   time.Time `json:"version"`
	MediaType string    `json:"media_type"`
}

// MediaTypeFor returns the STIX media type for the given spec version.
func MediaTypeFor(specVersion string) string {
	return "application/stix+json;version=" + specVersion
}

// ObjectTypeFromID returns the type prefix of a STIX identifier
// ("indicator--…" → "indicator"), or an empty string when the id has none.
func ObjectTypeFromID(id string) string {
	objectType, _, found := strings.Cut(id, "--")
	if !found {
		return ""
	}
	return objectType
}

// ObjectVersion derives the version timestamp of a STIX object: modified,
// then created, then the Unix epoch.
func ObjectVersion(raw map[string]any) time.Time {
	for _, field := range []string{"modified", "created"} {
		value, ok := raw[field].(string)
		if !ok || value == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Unix(0, 0).UTC()
}

// NewSTIXObject splits a submitted object into the row representation.
// Missing properties are left empty for the validator to report.
func NewSTIXObject(collectionID uuid.UUID, raw map[string]any) (STIXObject, error) {
	obj := STIXObject{
		CollectionID: collectionID,
		SpecVersion:  DefaultSpecVersion,
		Version:      ObjectVersion(raw),
	}

	payload := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case "id":
			obj.ID, _ = value.(string)
		case "type":
			obj.Type, _ = value.(string)
		case "spec_version":
			if sv, ok := value.(string); ok && sv != "" {
				obj.SpecVersion = sv
			}
		default:
			payload[key] = value
		}
	}

	if obj.Type == "" {
		obj.Type = ObjectTypeFromID(obj.ID)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return STIXObject{}, fmt.Errorf("error encoding payload of %s: %w", obj.ID, err)
	}
	obj.Payload = data

	return obj, nil
}

// ColumnOverflow names the first property that does not fit its column, or
// returns an empty string when the object can be stored.
func (o STIXObject) ColumnOverflow() string {
	for _, field := range []struct {
		name  string
		value string
		limit int
	}{
		{"id", o.ID, MaxSTIXIDLength},
		{"type", o.Type, MaxSTIXTypeLength},
		{"spec_version", o.SpecVersion, MaxSTIXSpecVersionLength},
	} {
		if n := utf8.RuneCountInString(field.value); n > field.limit {
			return fmt.Sprintf("%s is %d characters long, at most %d are accepted", field.name, n, field.limit)
		}
	}
	return ""
}

// TruncateRunes shortens s to at most n characters.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
