package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"latencytarget/server/domain"
	"latencytarget/server/handler"
)

func TestLatencyHandler_RespectsDelay(t *testing.T) {
	for _, ep := range domain.Endpoints() {
		t.Run(ep.Path, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, ep.Path, nil)

			start := time.Now()
			status, body := serve(t, handler.NewLatencyHandler(ep), req)
			elapsed := time.Since(start)

			if status != http.StatusOK {
				t.Fatalf("unexpected status: %d", status)
			}
			if body != ep.Body {
				t.Fatalf("unexpected body: got %q, want %q", body, ep.Body)
			}
			if elapsed < ep.Delay {
				t.Fatalf("responded too early: %v < %v", elapsed, ep.Delay)
			}
		})
	}
}

func TestLatencyHandler_FastIsImmediate(t *testing.T) {
	ep := domain.Endpoint{Path: "/fast", Body: "Fast response \n"}
	req := httptest.NewRequest(http.MethodGet, ep.Path, nil)

	start := time.Now()
	serve(t, handler.NewLatencyHandler(ep), req)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("fast endpoint took %v", elapsed)
	}
}
