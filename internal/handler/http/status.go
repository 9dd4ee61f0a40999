package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	apiRootID, err := apiRootParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: job %q", service.ErrNotFound, chi.URLParam(r, "jobID")))
		return
	}

	status, err := h.services.IngestService.GetJob(r.Context(), utils.PrincipalFromContext(r.Context()), apiRootID, jobID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeTAXII(w, r, status, http.StatusOK)
}
