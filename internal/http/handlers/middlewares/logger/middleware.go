package logger

import (
	"net/http"
	"time"
	"webdesktop/internal/http/httputils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// MiddlewareLogging logs every request and puts a request-scoped logger into the context
// (zerolog.Ctx) so handlers log with the same request_id.
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(httputils.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(httputils.HeaderRequestID, requestID)

			reqLog := log.With().Str("request_id", requestID).Logger()
			recorder := &responseRecorder{ResponseWriter: w}

			// Логируем начало запроса только в debug режиме
			if reqLog.GetLevel() <= zerolog.DebugLevel {
				reqLog.Debug().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("ip", r.RemoteAddr).
					Msg("request started")
			}

			next.ServeHTTP(recorder, r.WithContext(reqLog.WithContext(r.Context())))

			duration := time.Since(start)
			if recorder.statusCode == 0 {
				recorder.statusCode = http.StatusOK
			}

			// Определяем тип сообщения по статусу
			var msg string
			switch {
			case recorder.statusCode >= 500:
				msg = "server error"
			case recorder.statusCode >= 400:
				msg = "client error"
			default:
				msg = "request completed"
			}

			logEntry := reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.statusCode).
				Dur("duration_ms", duration).
				Int("bytes", recorder.size).
				Str("ip", r.RemoteAddr)

			if duration > 100*time.Millisecond {
				logEntry = logEntry.Bool("slow", true)
			}

			if recorder.statusCode >= 400 && recorder.statusCode < 500 {
				logEntry = logEntry.Str("error_type", "client_error")
			}

			if recorder.statusCode >= 500 {
				logEntry = logEntry.Str("error_type", "server_error")
			}

			logEntry.Msg(msg)
		})
	}
}
