package create

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

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_shortcut_creator.go -package=mocks
type ShortcutCreator interface {
	Create(ctx context.Context, sc models.Shortcut) (models.Shortcut, error)
}

func HandlerCreateShortcut(svc ShortcutCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := httputils.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dto.ShortcutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		created, err := svc.Create(ctx, dto.ShortcutRequestToDomain(req, user.ID, 0))
		if err != nil {
			if errors.Is(err, models.ErrInvalidData) {
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", user.ID).Msg("create shortcut failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to create shortcut")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.CreatedResponse{ID: created.ID})
	}
}
