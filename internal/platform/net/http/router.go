package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against, chi stays behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux returns the handler to serve, the root mux for AdaptChi
	Mux() http.Handler
}

// chiRouter wraps either the root mux or one of its scoped routers
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

// URLParam returns a path parameter captured by a {name} route segment
func URLParam(r *http.Request, name string) string { return chi.URLParam(r, name) }

func (c chiRouter) Get(p string, h Handler)  { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Post(p string, h Handler) { c.r.Method(http.MethodPost, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.r }

// DebugOptions selects the operational endpoints served beside the API
type DebugOptions struct {
	// Profiler mounts pprof under /debug
	Profiler bool
	// Metrics is served at /metrics when non-nil
	Metrics http.Handler
}

// MountDebug mounts the operational endpoints picked in o
func MountDebug(r Router, o DebugOptions) {
	if o.Metrics != nil {
		r.Handle("/metrics", o.Metrics)
	}
	if !o.Profiler {
		return
	}
	// chi's profiler expects to be mounted, so strip /debug before handing off
	h := http.StripPrefix("/debug", chimw.Profiler())
	r.Handle("/debug", h)
	r.Handle("/debug/*", h)
}
