package handler

import (
	"net/http"
	"strings"
)

// ProxyHeader はプロキシのヘッダ透過を確認するためのテスト用ヘッダです。
const ProxyHeader = "test-proxy-header"

const proxyHeaderUnset = "Not set"

// NewHelloHandler はtest-proxy-headerの値をそのまま返すハンドラを生成します。
func NewHelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, "Hello World - Proxy Header: "+proxyHeaderValue(r.Header)+" \n")
	}
}

// 同名ヘッダが複数ある場合は ", " で連結する。空値は未設定扱い。
func proxyHeaderValue(h http.Header) string {
	v := strings.Join(h.Values(ProxyHeader), ", ")
	if v == "" {
		return proxyHeaderUnset
	}
	return v
}
