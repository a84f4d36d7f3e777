package middleware

import (
	"log/slog"
	"net/http"

	"latencytarget/server/domain"
)

// Timing はリクエストごとにRequestIDを払い出し、開始と完了をログに出すミドルウェアを返します。
// 完了ログはハンドラがpanicした場合も出力されます。
func Timing(logger *slog.Logger, clock domain.Clock) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := domain.NewRequestID()
			ctx := domain.WithRequestID(r.Context(), id)
			url := r.URL.RequestURI()

			start := clock.Now()
			logger.InfoContext(ctx, "request started", "request_id", id.String(), "method", r.Method, "url", url)
			defer func() {
				logger.InfoContext(ctx, "request finished",
					"request_id", id.String(),
					"method", r.Method,
					"url", url,
					"elapsed", clock.Since(start),
				)
			}()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
