package register

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_registrar.go -package=mocks
type Registrar interface {
	Register(ctx context.Context, username, password string) (models.User, error)
}

func HandlerRegister(svc Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(ctx, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrConflict):
				httputils.WriteJSONError(w, http.StatusBadRequest, "username already exists")
			case errors.Is(err, models.ErrInvalidData):
				httputils.WriteJSONError(w, http.StatusBadRequest, invalidDataMessage(err))
			default:
				zerolog.Ctx(ctx).Error().Err(err).Msg("register failed")
				httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{ID: user.ID})
	}
}

// invalidDataMessage drops the sentinel prefix so the client sees only the reason.
func invalidDataMessage(err error) string {
	msg := err.Error()
	if _, reason, found := strings.Cut(msg, models.ErrInvalidData.Error()+": "); found {
		return reason
	}
	return msg
}
