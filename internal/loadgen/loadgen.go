// Package loadgen はレイテンシ模擬エンドポイントへ並行にGETを投げ、観測したレイテンシを集計します。
package loadgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config は1回の負荷実行の設定です。
type Config struct {
	Target      string // ベースURL。スキーム必須
	Path        string
	Total       int
	Concurrency int
	// ProxyHeader が空でなければ、全リクエストに test-proxy-header として付与します。
	ProxyHeader string
	Timeout     time.Duration
}

// Result は負荷実行の集計結果です。
type Result struct {
	Success int
	Failure int
	Min     time.Duration
	Max     time.Duration
	Mean    time.Duration
	Elapsed time.Duration
}

func (c Config) validate() error {
	if c.Total <= 0 {
		return errors.New("loadgen: total must be positive")
	}
	if c.Concurrency <= 0 {
		return errors.New("loadgen: concurrency must be positive")
	}
	return nil
}

// Run はcfg.Total件のリクエストをcfg.Concurrency個のワーカーに分けて送信します。
// 2xx以外の応答や通信エラーは失敗として数えるだけで、エラーは返しません。
// エラーを返すのは設定が不正な場合とctxがキャンセルされた場合だけで、後者でもそれまでの集計は返します。
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	u, err := url.Parse(cfg.Target)
	if err != nil {
		return Result{}, fmt.Errorf("loadgen: invalid target: %w", err)
	}
	u.Path = cfg.Path
	if cfg.Concurrency > cfg.Total {
		cfg.Concurrency = cfg.Total
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	var (
		mu    sync.Mutex
		stats recorder
	)
	perWorker, remainder := divideWork(cfg.Total, cfg.Concurrency)

	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < cfg.Concurrency; worker++ {
		n := perWorker
		if worker < remainder {
			n++
		}
		eg.Go(func() error {
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := do(ctx, client, u.String(), cfg.ProxyHeader)
				mu.Lock()
				if err != nil {
					stats.failure++
				} else {
					stats.observe(d)
				}
				mu.Unlock()
				if err != nil {
					logger.WarnContext(ctx, "request failed", "worker", worker, "err", err)
				}
			}
			return nil
		})
	}
	err = eg.Wait()
	res := stats.result()
	res.Elapsed = time.Since(start)
	return res, err
}

func do(ctx context.Context, client *http.Client, target, proxyHeader string) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	if proxyHeader != "" {
		req.Header.Set("test-proxy-header", proxyHeader)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, err
	}
	d := time.Since(start)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("non-success status: %s", resp.Status)
	}
	return d, nil
}

func divideWork(total, workers int) (int, int) {
	return total / workers, total % workers
}

type recorder struct {
	success int
	failure int
	min     time.Duration
	max     time.Duration
	sum     time.Duration
}

func (r *recorder) observe(d time.Duration) {
	if r.success == 0 || d < r.min {
		r.min = d
	}
	if d > r.max {
		r.max = d
	}
	r.sum += d
	r.success++
}

func (r *recorder) result() Result {
	res := Result{
		Success: r.success,
		Failure: r.failure,
		Min:     r.min,
		Max:     r.max,
	}
	if r.success > 0 {
		res.Mean = r.sum / time.Duration(r.success)
	}
	return res
}
