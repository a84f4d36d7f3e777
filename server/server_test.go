package server_test

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"latencytarget/server"
)

func TestNewServer_Addr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := server.NewServer(":3000", http.NotFoundHandler(), logger)

	if s.Addr() != ":3000" {
		t.Fatalf("unexpected addr: %s", s.Addr())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close before serve failed: %v", err)
	}
}

func TestServer_ListenThenServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := server.NewServer("127.0.0.1:0", http.NotFoundHandler(), logger)

	ln, err := s.Listen()
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", res.StatusCode)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after Close")
	}
}

func TestServer_ListenOnOccupiedPort(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to occupy port: %v", err)
	}
	defer occupied.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := server.NewServer(occupied.Addr().String(), http.NotFoundHandler(), logger)
	if _, err := s.Listen(); err == nil {
		t.Fatalf("expected bind error on %s", occupied.Addr())
	}
}
