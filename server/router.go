package server

import (
	"log/slog"
	"net/http"

	"latencytarget/server/domain"
	"latencytarget/server/handler"
	"latencytarget/server/middleware"
)

// Route は6つの固定ルートを登録したServeMuxを返します。該当しないパスは404です。
func Route(logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/{$}", getOnly(handler.NewHelloHandler()))
	for _, ep := range domain.Endpoints() {
		mux.Handle(ep.Path, getOnly(handler.NewLatencyHandler(ep)))
	}
	mux.Handle("/health", getOnly(handler.NewHealthHandler(logger)))
	return mux
}

// NewHandler はRouteをタイミングログとアクセスログで包んだハンドラを返します。
func NewHandler(logger *slog.Logger, clock domain.Clock) http.Handler {
	return middleware.Chain(Route(logger),
		middleware.Timing(logger, clock),
		middleware.AccessLog(logger),
	)
}

// GET以外は405ではなく404にする。HEADはnet/httpがボディを捨てて応答する。
func getOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
