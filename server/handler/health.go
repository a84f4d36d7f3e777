package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"latencytarget/server/domain"
)

// ViaNginxHeader はリバースプロキシが付与する経由マーカーです。
const ViaNginxHeader = "x-via-nginx"

// NewHealthHandler はx-via-nginxヘッダの有無を返すヘルスチェックハンドラを生成します。
// プロキシの設定確認のため、受信したヘッダをすべてログに出します。
func NewHealthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, _ := domain.RequestIDFrom(ctx)
		logger.InfoContext(ctx, "health check headers", "request_id", id.String(), "headers", r.Header)

		_, viaNginx := r.Header[http.CanonicalHeaderKey(ViaNginxHeader)]
		writeText(w, "OK - Via Nginx: "+strconv.FormatBool(viaNginx)+" \n")
	}
}
