package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
)

// Authenticator resolves a bearer token into a principal.
type Authenticator interface {
	ValidateToken(ctx context.Context, token string) (*auth.Principal, error)
}

// authMiddleware requires a valid bearer token and stores the resulting
// principal in the request context.
func authMiddleware(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}

			p, err := authn.ValidateToken(r.Context(), token)
			if err != nil {
				respondJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
				return
			}

			ctx := auth.ContextWithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// principalOrAbort extracts the principal set by authMiddleware. A missing
// principal on a protected route is a routing bug, surfaced as 401.
func principalOrAbort(w http.ResponseWriter, r *http.Request) (*auth.Principal, bool) {
	p, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return nil, false
	}
	return p, true
}
