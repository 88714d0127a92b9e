// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"complaints/internal/core/resultstate"
	"complaints/internal/core/version"
	"complaints/internal/modkit/httpkit"
	ptime "complaints/internal/platform/time"
)

// readyTimeout bounds all dependency pings of one readiness probe
const readyTimeout = 2 * time.Second

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// FreshnessReader exposes the index flags the freshness worker last saw
type FreshnessReader interface {
	Current() resultstate.Freshness
}

// Deps are the handler dependencies
// PG and CH stay untyped so a disabled backend reads as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Freshness   FreshnessReader
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"complaints-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
// Banner is the freshness-only banner kind, it never affects Status
type ReadyResponse struct {
	Status      string       `json:"status"                 example:"ok"` // ok degraded fail
	Checks      []ReadyCheck `json:"checks"`
	Banner      string       `json:"banner,omitempty"       example:"data_stale"`
	LastIndexed string       `json:"last_indexed,omitempty" example:"2025-09-03T12:00:00Z"`
	Now         string       `json:"now"                    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"complaints-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// health godoc
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: ptime.RFC3339(h.deps.StartedAt),
		Now:     ptime.RFC3339(h.now()),
	}, nil
}

// ready godoc
// @Summary Readiness probe with dependency checks and the current freshness banner
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	pg := ping(ctx, "pg", h.deps.PG)
	ch := ping(ctx, "ch", h.deps.CH)

	// clickhouse is optional, a skipped check does not degrade readiness
	out := ReadyResponse{Status: "ok", Checks: []ReadyCheck{pg, ch}, Now: ptime.RFC3339(h.now())}
	switch {
	case pg.Status == "fail" || ch.Status == "fail":
		out.Status = "fail"
	case pg.Status != "ok" || ch.Status == "unknown":
		out.Status = "degraded"
	}

	if h.deps.Freshness != nil {
		f := h.deps.Freshness.Current()
		out.Banner = f.Banner().Kind.String()
		out.LastIndexed = ptime.RFC3339(f.LastIndexed)
	}
	return out, nil
}

func ping(ctx stdctx.Context, name string, c any) ReadyCheck {
	if c == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := c.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// version godoc
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// service godoc
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: ptime.RFC3339(h.deps.StartedAt),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}
