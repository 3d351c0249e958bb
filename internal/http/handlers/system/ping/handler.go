package ping

import (
	"context"
	"net/http"
	"webdesktop/internal/http/httputils"

	"github.com/rs/zerolog"
)

type Service interface {
	PingDataBase(ctx context.Context) error
}

func HandlerPing(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingDataBase(r.Context()); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("Database ping failed")
			httputils.WriteTextResponse(w, http.StatusInternalServerError, "Database unavailable")
			return
		}
		httputils.WriteTextResponse(w, http.StatusOK, "OK")
	}
}
