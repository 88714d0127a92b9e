package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"complaints/internal/core/resultstate"
	phttp "complaints/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), d)
	rr := httptest.NewRecorder()
	m.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return rr.Code
}

func TestReady(t *testing.T) {
	cases := []struct {
		name string
		pg   any
		ch   any
		want string
	}{
		{"pg only", pinger{}, nil, "ok"},
		{"both up", pinger{}, pinger{}, "ok"},
		{"ch down", pinger{}, pinger{err: errors.New("code: 210")}, "fail"},
		{"pg without ping", struct{}{}, nil, "degraded"},
		{"no pg", nil, nil, "degraded"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got ReadyResponse
			get(t, Deps{ServiceName: "complaints-api", PG: c.pg, CH: c.ch}, "/ready", &got)
			if got.Status != c.want {
				t.Fatalf("status = %q, want %q (%+v)", got.Status, c.want, got.Checks)
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "complaints-api", StartedAt: time.Now().Add(-time.Minute)}

	var h HealthResponse
	if code := get(t, d, "/health", &h); code != stdhttp.StatusOK || !h.OK || h.Service != "complaints-api" {
		t.Fatalf("health = %d %+v", code, h)
	}

	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Uptime < 59 {
		t.Fatalf("uptime = %d", s.Uptime)
	}

	if code := get(t, d, "/version", nil); code != stdhttp.StatusOK {
		t.Fatalf("version = %d", code)
	}
}

type fixedFreshness resultstate.Freshness

func (f fixedFreshness) Current() resultstate.Freshness { return resultstate.Freshness(f) }

func TestReady_ReportsBannerWithoutDegrading(t *testing.T) {
	at := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	var got ReadyResponse
	get(t, Deps{PG: pinger{}, Freshness: fixedFreshness{IsDataStale: true, LastIndexed: at}}, "/ready", &got)
	if got.Status != "ok" || got.Banner != "data_stale" || got.LastIndexed != "2018-01-01T00:00:00Z" {
		t.Fatalf("ready = %+v", got)
	}

	got = ReadyResponse{}
	get(t, Deps{PG: pinger{}}, "/ready", &got)
	if got.Banner != "" || got.LastIndexed != "" {
		t.Fatalf("banner without a reader = %+v", got)
	}
}
