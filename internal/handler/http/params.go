// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	paramMatchID          = "match[id]"
	paramMatchType        = "match[type]"
	paramMatchVersion     = "match[version]"
	paramMatchSpecVersion = "match[spec_version]"
	paramAddedAfter       = "added_after"
	paramLimit            = "limit"
	paramNext             = "next"
)

// apiRootParam parses the {apiRoot} path segment. Anything that is not a
// UUID cannot name a root.
func apiRootParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "apiRoot"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: api root %q", service.ErrNotFound, chi.URLParam(r, "apiRoot"))
	}
	return id, nil
}

func collectionRef(r *http.Request) (models.CollectionRef, error) {
	apiRootID, err := apiRootParam(r)
	if err != nil {
		return models.CollectionRef{}, err
	}
	return models.CollectionRef{APIRootID: apiRootID, Collection: chi.URLParam(r, "collection")}, nil
}

// listValues returns every comma separated value of key, across repeated
// parameters, with empty entries kept for validation to reject.
func listValues(query url.Values, key string) []string {
	var values []string
	for _, raw := range query[key] {
		values = append(values, strings.Split(raw, ",")...)
	}
	return values
}

// parseObjectFilter reads the match[...] and added_after parameters.
// versionParser decides the default of match[version].
func parseObjectFilter(query url.Values, versionParser func([]string) (models.VersionFilter, error)) (models.ObjectFilter, error) {
	filter := models.ObjectFilter{
		IDs:          listValues(query, paramMatchID),
		Types:        listValues(query, paramMatchType),
		SpecVersions: listValues(query, paramMatchSpecVersion),
	}

	version, err := versionParser(listValues(query, paramMatchVersion))
	if err != nil {
		return models.ObjectFilter{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	filter.Version = version

	if raw := query.Get(paramAddedAfter); raw != "" {
		addedAfter, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return models.ObjectFilter{}, fmt.Errorf("%w: %s %q", ErrInvalidParameter, paramAddedAfter, raw)
		}
		addedAfter = addedAfter.UTC()
		filter.AddedAfter = &addedAfter
	}

	return filter, nil
}

func parsePageRequest(query url.Values) (models.PageRequest, error) {
	page := models.PageRequest{Cursor: query.Get(paramNext)}

	if raw := query.Get(paramLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return models.PageRequest{}, fmt.Errorf("%w: %s %q", ErrInvalidParameter, paramLimit, raw)
		}
		page.Limit = limit
	}

	return page, nil
}
