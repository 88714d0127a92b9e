package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"complaints/internal/platform/config"
	kit "complaints/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_ConfigAndMount(t *testing.T) {
	kit.Env(t, map[string]string{"CORE_API_PORT": ":4123"})
	s := NewServer(config.New().Prefix("CORE_API_"), func(m *chi.Mux) {
		m.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})
	if s.Addr() != ":4123" {
		t.Fatalf("addr = %q", s.Addr())
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	kit.Env(t, map[string]string{"CORE_API_PORT": "127.0.0.1:0", "CORE_API_SHUTDOWN_GRACE": "1s"})
	s := NewServer(config.New().Prefix("CORE_API_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
