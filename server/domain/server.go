package domain

import "net"

// Server はHTTPリスナーのライフサイクルを表します。
// Listen でポートを確保してから Serve に渡すので、bind の失敗は Serve より前に分かります。
type Server interface {
	Listen() (net.Listener, error)
	Serve(ln net.Listener) error
	Close() error
	Addr() string
}
