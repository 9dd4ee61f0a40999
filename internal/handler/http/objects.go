// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/go-chi/chi/v5"
)

// envelope is the body of an add-objects request.
type envelope struct {
	Objects []map[string]any `json:"objects"`
}

type versionsResource struct {
	More     bool     `json:"more"`
	Versions []string `json:"versions,omitempty"`
}

func (h *Handler) listObjects(w http.ResponseWriter, r *http.Request) {
	ref, filter, page, err := parseListRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.ObjectService.ListObjects(r.Context(), utils.PrincipalFromContext(r.Context()), ref, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setDateAddedHeaders(w, result.Objects, func(o models.STIXObject) time.Time { return o.DateAdded })
	h.writeTAXII(w, r, result, http.StatusOK)
}

func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	ref, filter, page, err := parseListRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.ObjectService.GetObject(r.Context(), utils.PrincipalFromContext(r.Context()), ref, chi.URLParam(r, "objectID"), filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setDateAddedHeaders(w, result.Objects, func(o models.STIXObject) time.Time { return o.DateAdded })
	h.writeTAXII(w, r, result, http.StatusOK)
}

func (h *Handler) listManifest(w http.ResponseWriter, r *http.Request) {
	ref, filter, page, err := parseListRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.ObjectService.ListManifest(r.Context(), utils.PrincipalFromContext(r.Context()), ref, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	setDateAddedHeaders(w, result.Objects, func(m models.ManifestEntry) time.Time { return m.DateAdded })
	h.writeTAXII(w, r, result, http.StatusOK)
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	ref, err := collectionRef(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	specVersions := listValues(r.URL.Query(), paramMatchSpecVersion)
	versions, err := h.services.ObjectService.ListVersions(r.Context(), utils.PrincipalFromContext(r.Context()), ref, chi.URLParam(r, "objectID"), specVersions)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resource := versionsResource{Versions: make([]string, 0, len(versions))}
	for _, v := range versions {
		resource.Versions = append(resource.Versions, formatTimestamp(v))
	}
	h.writeTAXII(w, r, resource, http.StatusOK)
}

// deleteObject removes object versions. Without match[version] every
// version is removed.
func (h *Handler) deleteObject(w http.ResponseWriter, r *http.Request) {
	ref, err := collectionRef(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	filter, err := parseObjectFilter(r.URL.Query(), models.ParseDeleteVersionFilter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.ObjectService.DeleteObject(r.Context(), utils.PrincipalFromContext(r.Context()), ref, chi.URLParam(r, "objectID"), filter); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// addObjects accepts an envelope and answers 202 with the pending job.
func (h *Handler) addObjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ref, err := collectionRef(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var body envelope
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContentLength))
	decoder.UseNumber()
	if err = decoder.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit))
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	status, err := h.services.IngestService.SubmitBatch(r.Context(), utils.PrincipalFromContext(r.Context()), ref, body.Objects)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("job_id", status.ID.String()).Int("objects", len(body.Objects)).Msg("envelope accepted")
	h.writeTAXII(w, r, status, http.StatusAccepted)
}

func parseListRequest(r *http.Request) (models.CollectionRef, models.ObjectFilter, models.PageRequest, error) {
	ref, err := collectionRef(r)
	if err != nil {
		return models.CollectionRef{}, models.ObjectFilter{}, models.PageRequest{}, err
	}

	query := r.URL.Query()
	filter, err := parseObjectFilter(query, models.ParseVersionFilter)
	if err != nil {
		return models.CollectionRef{}, models.ObjectFilter{}, models.PageRequest{}, err
	}

	page, err := parsePageRequest(query)
	if err != nil {
		return models.CollectionRef{}, models.ObjectFilter{}, models.PageRequest{}, err
	}

	return ref, filter, page, nil
}
