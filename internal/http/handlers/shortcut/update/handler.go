package update

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_shortcut_updater.go -package=mocks
type ShortcutUpdater interface {
	Update(ctx context.Context, sc models.Shortcut) (models.Shortcut, error)
}

func HandlerUpdateShortcut(svc ShortcutUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := httputils.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil || id <= 0 {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid shortcut id")
			return
		}

		var req dto.ShortcutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		_, err = svc.Update(ctx, dto.ShortcutRequestToDomain(req, user.ID, id))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnfound):
				httputils.WriteJSONError(w, http.StatusNotFound, "shortcut not found")
			case errors.Is(err, models.ErrInvalidData):
				httputils.WriteJSONError(w, http.StatusBadRequest, err.Error())
			default:
				zerolog.Ctx(ctx).Error().Err(err).Int64("shortcut_id", id).Msg("update shortcut failed")
				httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to update shortcut")
			}
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "shortcut updated"})
	}
}
