package server

import (
	"log/slog"
	"net"
	"net/http"

	"latencytarget/server/domain"
)

type Server struct {
	HTTP *http.Server
}

// NewServer はaddrで待ち受けるServerを生成します。net/http内部のエラーログもloggerに流します。
func NewServer(addr string, handler http.Handler, logger *slog.Logger) domain.Server {
	httpServer := &http.Server{
		Addr:     addr,
		Handler:  handler,
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return &Server{
		HTTP: httpServer,
	}
}

func (s *Server) Listen() (net.Listener, error) { return net.Listen("tcp", s.HTTP.Addr) }
func (s *Server) Serve(ln net.Listener) error   { return s.HTTP.Serve(ln) }
func (s *Server) Close() error                  { return s.HTTP.Close() }
func (s *Server) Addr() string                  { return s.HTTP.Addr }
