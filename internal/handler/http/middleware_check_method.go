// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound renders unknown paths as TAXII error messages. It is also the
// router's MethodNotAllowed handler: an unsupported method on a known path
// is answered like an unknown path.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeTAXII(w, r, taxiiError{
		Title:      http.StatusText(http.StatusNotFound),
		HTTPStatus: "404",
	}, http.StatusNotFound)
}
