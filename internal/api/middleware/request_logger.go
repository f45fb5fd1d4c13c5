package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RequestLogger пишет строку лога на каждый запрос с request_id из контекста.
// Должен стоять после RequestID, иначе request_id будет пустым.
func RequestLogger(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			const format = "%s %s - request completed: request_id=%s, status=%d, duration_ms=%d"
			args := []interface{}{
				r.Method, routeTemplate(r), RequestIDFromContext(r.Context()), rec.status, time.Since(start).Milliseconds(),
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error(format, args...)
			case rec.status >= http.StatusBadRequest:
				log.Warn(format, args...)
			default:
				log.Info(format, args...)
			}
		})
	}
}
