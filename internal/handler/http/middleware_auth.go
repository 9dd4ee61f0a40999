package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/utils"
	"github.com/rs/zerolog"
)

// authenticate resolves an optional bearer token to the request principal.
//
// Requests without an "Authorization" header continue anonymously; every
// access decision is left to the service layer. A header that is present
// but malformed, expired or signed for another issuer is rejected with 401.
// On success the account is stored in the request context with
// [utils.WithPrincipal] and its username is added to the request logger.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		account, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("account", account.Username)
		})
		ctx = utils.WithPrincipal(l.WithContext(ctx), account)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
