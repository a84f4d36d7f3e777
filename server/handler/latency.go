package handler

import (
	"net/http"
	"time"

	"latencytarget/server/domain"
)

// NewLatencyHandler はep.Delayだけ待ってからep.Bodyを返すハンドラを生成します。
// 待機中はgoroutineがタイマーで停止するだけなので、他のリクエストを妨げません。
// クライアントが途中で切断しても待機は打ち切りません。
func NewLatencyHandler(ep domain.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ep.Delay > 0 {
			time.Sleep(ep.Delay)
		}
		writeText(w, ep.Body)
	}
}
