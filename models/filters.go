// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VersionMode selects which versions of each object a read returns.
type VersionMode int

const (
	// VersionLast selects the newest version of every object. Zero value.
	VersionLast VersionMode = iota
	// VersionFirst selects the oldest version of every object.
	VersionFirst
	// VersionAll selects every stored version.
	VersionAll
	// VersionSpecific selects the versions listed in VersionFilter.Versions.
	VersionSpecific
)

func (m VersionMode) String() string {
	switch m {
	case VersionFirst:
		return "first"
	case VersionAll:
		return "all"
	case VersionSpecific:
		return "specific"
	default:
		return "last"
	}
}

// ErrInvalidVersionFilter is returned for match[version] values that are
// neither a keyword nor an RFC 3339 timestamp.
var ErrInvalidVersionFilter = errors.New("invalid version filter")

// VersionFilter is the parsed form of match[version].
type VersionFilter struct {
	Mode     VersionMode
	Versions []time.Time
}

// ParseVersionFilter parses match[version] values. Keywords win over explicit
// timestamps in the order all, first, last; no values means last.
func ParseVersionFilter(values []string) (VersionFilter, error) {
	var (
		all, first, last bool
		versions         []time.Time
	)

	for _, value := range values {
		switch value {
		case "all":
			all = true
		case "first":
			first = true
		case "last":
			last = true
		default:
			ts, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return VersionFilter{}, fmt.Errorf("%w: %q", ErrInvalidVersionFilter, value)
			}
			versions = append(versions, ts.UTC())
		}
	}

	switch {
	case all:
		return VersionFilter{Mode: VersionAll}, nil
	case first:
		return VersionFilter{Mode: VersionFirst}, nil
	case last || len(versions) == 0:
		return VersionFilter{Mode: VersionLast}, nil
	default:
		return VersionFilter{Mode: VersionSpecific, Versions: versions}, nil
	}
}

// ParseDeleteVersionFilter is ParseVersionFilter for deletes, where no
// values select every version.
func ParseDeleteVersionFilter(values []string) (VersionFilter, error) {
	if len(values) == 0 {
		return VersionFilter{Mode: VersionAll}, nil
	}
	return ParseVersionFilter(values)
}

// ObjectFilter narrows object listings, manifests and deletes.
// Empty slices mean "no restriction".
type ObjectFilter struct {
	CollectionID uuid.UUID
	IDs          []string
	Types        []string
	SpecVersions []string
	Version      VersionFilter
	AddedAfter   *time.Time
}

// Position is the keyset of a stored row in listing order.
type Position struct {
	DateAdded time.Time
	ID        string
	Version   time.Time
}

// ObjectQuery is a single page request against the object store.
type ObjectQuery struct {
	Filter ObjectFilter

	// After, when set, restricts the page to rows strictly past this position.
	After *Position

	// Limit is the page size; repositories fetch one extra row to detect more.
	Limit int
}

// PageRequest carries the client-facing pagination parameters.
type PageRequest struct {
	Cursor string
	Limit  int
}

// ObjectPage is one page of an object listing.
type ObjectPage struct {
	More    bool         `json:"more"`
	Next    string       `json:"next,omitempty"`
	Objects []STIXObject `json:"objects,omitempty"`
}

// ManifestPage is one page of a manifest listing.
type ManifestPage struct {
	More    bool            `json:"more"`
	Next    string          `json:"next,omitempty"`
	Objects []ManifestEntry `json:"objects,omitempty"`
}
