package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"latencytarget/internal/loadgen"
	"latencytarget/internal/logging"
)

func main() {
	var (
		targetFlag      = flag.String("target", "http://localhost:3000", "base URL of the server")
		pathFlag        = flag.String("path", "/fast", "endpoint path: / | /fast | /memory | /database | /slow | /health")
		totalFlag       = flag.Int("total", 100, "total number of requests to send")
		concurrencyFlag = flag.Int("concurrency", 10, "number of concurrent workers")
		proxyHeaderFlag = flag.String("proxy-header", "", "value sent as test-proxy-header")
	)
	flag.Parse()

	logger := logging.New(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, logger, loadgen.Config{
		Target:      *targetFlag,
		Path:        *pathFlag,
		Total:       *totalFlag,
		Concurrency: *concurrencyFlag,
		ProxyHeader: *proxyHeaderFlag,
	})
	if err != nil {
		logger.ErrorContext(ctx, "load failed", "err", err)
		os.Exit(1)
	}
}

// run は負荷をかけて集計を1行出力します。シグナルで中断された場合もそこまでの集計を出力します。
func run(ctx context.Context, logger *slog.Logger, cfg loadgen.Config) error {
	res, err := loadgen.Run(ctx, cfg, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	msg := "load complete"
	if err != nil {
		msg = "load interrupted"
	}
	logger.InfoContext(ctx, msg,
		"path", cfg.Path,
		"success", res.Success,
		"failure", res.Failure,
		"min", res.Min,
		"mean", res.Mean,
		"max", res.Max,
		"elapsed", res.Elapsed,
	)
	return nil
}
