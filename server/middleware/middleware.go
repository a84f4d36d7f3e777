// Package middleware はリクエスト単位のログ出力を担うHTTPミドルウェアを提供します。
package middleware

import "net/http"

// Middleware はhttp.Handlerを包むデコレータです。
type Middleware func(http.Handler) http.Handler

// Chain はmwsを外側から順に適用します。Chain(h, a, b) は a(b(h)) になります。
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
