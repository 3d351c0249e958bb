package auth

import (
	"net/http"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

type TokenParser interface {
	ParseToken(token string) (models.User, error)
}

// MiddlewareAuth requires a bearer token: missing -> 401, invalid or expired -> 403.
func MiddlewareAuth(auth TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, ok := httputils.BearerToken(r)
			if !ok {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := auth.ParseToken(tokenString)
			if err != nil {
				zerolog.Ctx(ctx).Debug().Err(err).Msg("rejected bearer token")
				httputils.WriteJSONError(w, http.StatusForbidden, "invalid or expired token")
				return
			}

			ctx = httputils.WithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
