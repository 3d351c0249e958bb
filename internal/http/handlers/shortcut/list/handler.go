package list

import (
	"context"
	"net/http"
	"time"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/dto"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=../../mocks/mock_shortcut_lister.go -package=mocks
type ShortcutLister interface {
	List(ctx context.Context, userID int64) ([]models.Shortcut, error)
}

func HandlerListShortcuts(svc ShortcutLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, ok := httputils.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		shortcuts, err := svc.List(ctx, user.ID)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", user.ID).Msg("list shortcuts failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to list shortcuts")
			return
		}

		// пустой список отдаем как [], а не 204: клиенту проще гидрировать
		httputils.WriteJSONResponse(w, http.StatusOK, dto.ShortcutResponsesFromDomains(shortcuts))
	}
}
