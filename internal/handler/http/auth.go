package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/MKhiriev/go-taxii/models"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// login exchanges account credentials for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.AccountID).Msg("account logged in")
	if _, err = utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("failed to write response")
	}
}
