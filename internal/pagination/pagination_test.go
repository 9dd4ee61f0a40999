// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collectionID = uuid.MustParse("2b2b6f8e-3a1c-4c0e-9f4f-2d0d3f9f6a11")

func newTestEngine() *Engine {
	return NewEngine(config.Pagination{DefaultPageSize: 3, MaxPageSize: 5}, "cursor-key")
}

func TestClamp(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		in, want int
	}{
		{0, 3},
		{-4, 3},
		{1, 1},
		{4, 4},
		{5, 5},
		{500, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, e.Clamp(tt.in))
		})
	}
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	e := newTestEngine()
	v1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	a := models.ObjectFilter{
		CollectionID: collectionID,
		Types:        []string{"indicator", "malware"},
		Version:      models.VersionFilter{Mode: models.VersionSpecific, Versions: []time.Time{v1, v2}},
	}
	b := models.ObjectFilter{
		CollectionID: collectionID,
		Types:        []string{"malware", "indicator"},
		Version:      models.VersionFilter{Mode: models.VersionSpecific, Versions: []time.Time{v2, v1}},
	}

	assert.Equal(t, e.Fingerprint(a), e.Fingerprint(b))
}

func TestFingerprint_DiffersPerFilter(t *testing.T) {
	e := newTestEngine()
	base := models.ObjectFilter{CollectionID: collectionID}
	addedAfter := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	variants := map[string]models.ObjectFilter{
		"collection":   {CollectionID: uuid.New()},
		"types":        {CollectionID: collectionID, Types: []string{"indicator"}},
		"ids":          {CollectionID: collectionID, IDs: []string{"indicator--1"}},
		"spec version": {CollectionID: collectionID, SpecVersions: []string{"2.1"}},
		"version mode": {CollectionID: collectionID, Version: models.VersionFilter{Mode: models.VersionAll}},
		"added after":  {CollectionID: collectionID, AddedAfter: &addedAfter},
	}

	for name, filter := range variants {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, e.Fingerprint(base), e.Fingerprint(filter))
		})
	}

	other := NewEngine(config.Pagination{DefaultPageSize: 3, MaxPageSize: 5}, "another-key")
	assert.NotEqual(t, e.Fingerprint(base), other.Fingerprint(base))
}

func TestEncodeDecode(t *testing.T) {
	e := newTestEngine()
	pos := models.Position{
		DateAdded: time.Date(2024, 3, 1, 10, 0, 0, 123456000, time.UTC),
		ID:        "indicator--1",
		Version:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	token := e.Encode(pos, "fp")
	assert.NotContains(t, token, "=")

	decoded, err := e.Decode(token, "fp")
	require.NoError(t, err)
	assert.True(t, pos.DateAdded.Equal(decoded.DateAdded))
	assert.True(t, pos.Version.Equal(decoded.Version))
	assert.Equal(t, pos.ID, decoded.ID)
}

func TestDecode_Invalid(t *testing.T) {
	e := newTestEngine()
	valid := e.Encode(models.Position{ID: "indicator--1"}, "fp")

	tests := map[string]string{
		"not base64":          "%%%",
		"not json":            base64.RawURLEncoding.EncodeToString([]byte("nope")),
		"missing id":          base64.RawURLEncoding.EncodeToString([]byte(`{"f":"fp"}`)),
		"fingerprint differs": valid,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			fingerprint := "fp"
			if name == "fingerprint differs" {
				fingerprint = "other"
			}
			_, err := e.Decode(token, fingerprint)
			assert.ErrorIs(t, err, ErrInvalidCursor)
		})
	}
}

// ── NextPage ──

type row struct {
	pos models.Position
}

// memoryFetcher serves rows ordered by (date_added, id, version).
func memoryFetcher(rows []row, queries *[]models.ObjectQuery) Fetcher[row] {
	return func(_ context.Context, query models.ObjectQuery) ([]row, error) {
		*queries = append(*queries, query)

		out := make([]row, 0, query.Limit)
		for _, r := range rows {
			if query.After != nil && !after(r.pos, *query.After) {
				continue
			}
			if len(out) == query.Limit {
				break
			}
			out = append(out, r)
		}
		return out, nil
	}
}

func after(a, b models.Position) bool {
	if !a.DateAdded.Equal(b.DateAdded) {
		return a.DateAdded.After(b.DateAdded)
	}
	if a.ID != b.ID {
		return a.ID > b.ID
	}
	return a.Version.After(b.Version)
}

func positionOf(r row) models.Position { return r.pos }

func TestNextPage_WalksAllRowsWithoutGapsOrDuplicates(t *testing.T) {
	e := newTestEngine()
	filter := models.ObjectFilter{CollectionID: collectionID}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var rows []row
	for i := 0; i < 7; i++ {
		rows = append(rows, row{pos: models.Position{
			DateAdded: base.Add(time.Duration(i/2) * time.Second),
			ID:        fmt.Sprintf("indicator--%d", i),
			Version:   base,
		}})
	}

	var (
		queries []models.ObjectQuery
		seen    []string
		cursor  string
		pages   int
	)
	for {
		page, err := NextPage(context.Background(), e, filter, models.PageRequest{Cursor: cursor, Limit: 2}, memoryFetcher(rows, &queries), positionOf)
		require.NoError(t, err)
		pages++
		for _, r := range page.Items {
			seen = append(seen, r.pos.ID)
		}
		if !page.More {
			assert.Empty(t, page.Next)
			break
		}
		require.NotEmpty(t, page.Next)
		cursor = page.Next
	}

	assert.Equal(t, 4, pages)
	require.Len(t, seen, 7)
	for i, id := range seen {
		assert.Equal(t, fmt.Sprintf("indicator--%d", i), id)
	}
	for _, q := range queries {
		assert.Equal(t, 3, q.Limit, "fetches one row beyond the page size")
	}
}

func TestNextPage_ExactFitHasNoMore(t *testing.T) {
	e := newTestEngine()
	rows := []row{{pos: models.Position{ID: "a"}}, {pos: models.Position{ID: "b"}}}
	var queries []models.ObjectQuery

	page, err := NextPage(context.Background(), e, models.ObjectFilter{}, models.PageRequest{Limit: 2}, memoryFetcher(rows, &queries), positionOf)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.False(t, page.More)
	assert.Empty(t, page.Next)
}

func TestNextPage_RejectsCursorFromOtherFilter(t *testing.T) {
	e := newTestEngine()
	rows := []row{{pos: models.Position{ID: "a"}}, {pos: models.Position{ID: "b"}}}
	var queries []models.ObjectQuery

	first, err := NextPage(context.Background(), e, models.ObjectFilter{CollectionID: collectionID}, models.PageRequest{Limit: 1}, memoryFetcher(rows, &queries), positionOf)
	require.NoError(t, err)
	require.True(t, first.More)

	_, err = NextPage(context.Background(), e,
		models.ObjectFilter{CollectionID: collectionID, Types: []string{"indicator"}},
		models.PageRequest{Cursor: first.Next, Limit: 1},
		memoryFetcher(rows, &queries), positionOf)
	assert.ErrorIs(t, err, ErrInvalidCursor)
	assert.Len(t, queries, 1, "no fetch for a rejected cursor")
}

func TestNextPage_FetchError(t *testing.T) {
	e := newTestEngine()
	wantErr := errors.New("db down")

	_, err := NextPage(context.Background(), e, models.ObjectFilter{}, models.PageRequest{},
		func(context.Context, models.ObjectQuery) ([]row, error) { return nil, wantErr }, positionOf)
	assert.ErrorIs(t, err, wantErr)
}
