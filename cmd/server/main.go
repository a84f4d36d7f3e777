package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"

	"latencytarget/internal/config"
	"latencytarget/internal/logging"
	"latencytarget/server"
	"latencytarget/server/domain"
)

func main() {
	ctx := context.Background()
	logger := logging.New(os.Stderr)
	slog.SetDefault(logger)

	if err := run(ctx, logger, config.Load()); err != nil {
		logger.ErrorContext(ctx, "http server error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	s, ln, err := start(ctx, logger, cfg)
	if err != nil {
		return err
	}
	if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// start はポートを確保してから起動ログを出します。bind に失敗した場合は何も出力しません。
func start(ctx context.Context, logger *slog.Logger, cfg config.Config) (domain.Server, net.Listener, error) {
	handler := server.NewHandler(logger, domain.NewSystemClock())
	s := server.NewServer(cfg.Addr(), handler, logger)

	ln, err := s.Listen()
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "Server running on port "+cfg.Port)
	logger.InfoContext(ctx, "- Fast endpoint: http://localhost:"+cfg.Port+"/fast")
	logger.InfoContext(ctx, "- Slow endpoint: http://localhost:"+cfg.Port+"/slow")
	return s, ln, nil
}
