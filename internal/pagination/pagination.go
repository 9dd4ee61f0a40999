// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination implements stateless keyset pagination for object and
// manifest listings.
//
// A cursor is the unpadded base64url encoding of
//
//	{"d": date_added, "i": object id, "v": version, "f": fingerprint}
//
// where fingerprint is an HMAC of the canonical filter set. A cursor is only
// accepted together with the filters it was issued for.
package pagination

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/models"
)

// ErrInvalidCursor is returned for a cursor that cannot be decoded or was
// issued for a different filter set.
var ErrInvalidCursor = errors.New("invalid cursor")

// Engine encodes, verifies and applies cursors.
type Engine struct {
	hasher       *utils.Hasher
	defaultLimit int
	maxLimit     int
}

// NewEngine returns an Engine whose fingerprints are keyed with key.
func NewEngine(cfg config.Pagination, key string) *Engine {
	return &Engine{
		hasher:       utils.NewHasher(key),
		defaultLimit: cfg.DefaultPageSize,
		maxLimit:     cfg.MaxPageSize,
	}
}

// Clamp maps a requested limit into [1, max]. Zero or negative selects the
// default page size.
func (e *Engine) Clamp(limit int) int {
	if limit <= 0 {
		limit = e.defaultLimit
	}
	return max(1, min(limit, e.maxLimit))
}

type cursor struct {
	DateAdded   time.Time `json:"d"`
	ID          string    `json:"i"`
	Version     time.Time `json:"v"`
	Fingerprint string    `json:"f"`
}

// Encode returns the opaque cursor for the row at pos.
func (e *Engine) Encode(pos models.Position, fingerprint string) string {
	data, _ := json.Marshal(cursor{
		DateAdded:   pos.DateAdded.UTC(),
		ID:          pos.ID,
		Version:     pos.Version.UTC(),
		Fingerprint: fingerprint,
	})
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses token and checks that it was issued for fingerprint.
func (e *Engine) Decode(token, fingerprint string) (models.Position, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	var c cursor
	if err = json.Unmarshal(data, &c); err != nil {
		return models.Position{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	if c.ID == "" || c.Fingerprint != fingerprint {
		return models.Position{}, ErrInvalidCursor
	}

	return models.Position{DateAdded: c.DateAdded, ID: c.ID, Version: c.Version}, nil
}

// canonicalFilter is the order-independent form of an ObjectFilter.
type canonicalFilter struct {
	CollectionID string     `json:"c"`
	IDs          []string   `json:"i"`
	Types        []string   `json:"t"`
	SpecVersions []string   `json:"s"`
	VersionMode  string     `json:"m"`
	Versions     []string   `json:"v"`
	AddedAfter   *time.Time `json:"a"`
}

// Fingerprint returns the HMAC of the canonical encoding of filter.
func (e *Engine) Fingerprint(filter models.ObjectFilter) string {
	canonical := canonicalFilter{
		CollectionID: filter.CollectionID.String(),
		IDs:          sortedCopy(filter.IDs),
		Types:        sortedCopy(filter.Types),
		SpecVersions: sortedCopy(filter.SpecVersions),
		VersionMode:  filter.Version.Mode.String(),
	}
	for _, v := range filter.Version.Versions {
		canonical.Versions = append(canonical.Versions, v.UTC().Format(time.RFC3339Nano))
	}
	slices.Sort(canonical.Versions)
	if filter.AddedAfter != nil {
		addedAfter := filter.AddedAfter.UTC()
		canonical.AddedAfter = &addedAfter
	}

	data, _ := json.Marshal(canonical)
	return e.hasher.SumHex(data)
}

func sortedCopy(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	More  bool
	Next  string
}

// Fetcher loads at most query.Limit rows after query.After.
type Fetcher[T any] func(ctx context.Context, query models.ObjectQuery) ([]T, error)

// NextPage fetches the page after req.Cursor. It asks for one row beyond the
// clamped limit to learn whether more rows follow.
func NextPage[T any](ctx context.Context, e *Engine, filter models.ObjectFilter, req models.PageRequest, fetch Fetcher[T], position func(T) models.Position) (Page[T], error) {
	fingerprint := e.Fingerprint(filter)
	limit := e.Clamp(req.Limit)

	query := models.ObjectQuery{Filter: filter, Limit: limit + 1}
	if req.Cursor != "" {
		after, err := e.Decode(req.Cursor, fingerprint)
		if err != nil {
			return Page[T]{}, err
		}
		query.After = &after
	}

	rows, err := fetch(ctx, query)
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		page.More = true
		page.Next = e.Encode(position(page.Items[limit-1]), fingerprint)
	}

	return page, nil
}
