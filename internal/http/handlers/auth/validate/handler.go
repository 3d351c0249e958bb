package validate

import (
	"net/http"
	"webdesktop/internal/http/httputils"
)

// HandlerValidateToken sits behind the auth middleware, so reaching it means the token is valid.
func HandlerValidateToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := httputils.UserFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
