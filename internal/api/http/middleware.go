package http

import (
	"net/http"
	"strings"

	"whites-admin-backend/internal/security"
)

// requireSession gates every privileged route. An expired token is turned
// away here, before any handler runs; the stores themselves never check
// authentication.
func (h *Handlers) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, security.ErrInvalidSession)
			return
		}
		if _, err := h.auth.Validate(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}
