package remove

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_shortcut_deleter.go -package=mocks
type ShortcutDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

func HandlerDeleteShortcut(svc ShortcutDeleter) http.HandlerFunc {
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

		if err := svc.Delete(ctx, user.ID, id); err != nil {
			if errors.Is(err, models.ErrUnfound) {
				httputils.WriteJSONError(w, http.StatusNotFound, "shortcut not found")
				return
			}
			zerolog.Ctx(ctx).Error().Err(err).Int64("shortcut_id", id).Msg("delete shortcut failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to delete shortcut")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "shortcut deleted"})
	}
}
