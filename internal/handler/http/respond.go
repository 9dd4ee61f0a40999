// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/utils"
)

const (
	taxiiMediaType   = "application/taxii+json;version=2.1"
	taxiiContentType = "application/taxii+json"

	// taxiiTimestamp renders timestamps with the microsecond precision the
	// store keeps.
	taxiiTimestamp = "2006-01-02T15:04:05.000000Z"

	dateAddedFirstHeader = "X-TAXII-Date-Added-First"
	dateAddedLastHeader  = "X-TAXII-Date-Added-Last"
)

// taxiiError is the TAXII error message resource.
type taxiiError struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	HTTPStatus  string `json:"http_status"`
}

func (h *Handler) writeTAXII(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSONAs(w, taxiiMediaType, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeTAXII").Msg("failed to write response")
	}
}

// writeError renders err as a TAXII error message. Details are withheld
// for 404 and server-side failures.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err, utils.PrincipalFromContext(r.Context()))

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	body := taxiiError{Title: http.StatusText(status), HTTPStatus: strconv.Itoa(status)}
	if status != http.StatusNotFound && status < http.StatusInternalServerError {
		body.Description = err.Error()
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	h.writeTAXII(w, r, body, status)
}

func formatTimestamp(ts time.Time) string {
	return ts.UTC().Format(taxiiTimestamp)
}

// setDateAddedHeaders reports the date_added range of a returned page.
func setDateAddedHeaders[T any](w http.ResponseWriter, items []T, dateAdded func(T) time.Time) {
	if len(items) == 0 {
		return
	}
	w.Header().Set(dateAddedFirstHeader, formatTimestamp(dateAdded(items[0])))
	w.Header().Set(dateAddedLastHeader, formatTimestamp(dateAdded(items[len(items)-1])))
}
