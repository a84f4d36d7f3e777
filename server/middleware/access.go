package middleware

import (
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// AccessLog は1リクエストにつき1行のアクセスログを出すミドルウェアを返します。
func AccessLog(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Log(r.Context(), statusLevel(m.Code), "access",
				"method", r.Method,
				"url", r.URL.RequestURI(),
				"status", m.Code,
				"response_ms", float64(m.Duration.Microseconds())/1000,
				"bytes", m.Written,
			)
		})
	}
}

func statusLevel(code int) slog.Level {
	switch {
	case code >= http.StatusInternalServerError:
		return slog.LevelError
	case code >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
