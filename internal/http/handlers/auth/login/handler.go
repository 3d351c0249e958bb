package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_authenticator.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

func HandlerLogin(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.Login(ctx, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnfound):
				httputils.WriteJSONError(w, http.StatusBadRequest, "user not found")
			case errors.Is(err, models.ErrUnauthorized):
				httputils.WriteJSONError(w, http.StatusForbidden, "wrong password")
			default:
				zerolog.Ctx(ctx).Error().Err(err).Msg("login failed")
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{Token: token})
	}
}
