// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"complaints/internal/core/version"
	modkit "complaints/internal/modkit"
	"complaints/internal/modkit/httpkit"
	str "complaints/internal/platform/strings"

	metahttp "complaints/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built

	startedAt time.Time
}

// Ports are optional, without a freshness reader /meta/ready omits the banner
type Ports struct {
	Freshness metahttp.FreshnessReader
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{deps: deps, built: b, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   m.startedAt,
	}
	if p, ok := m.built.Ports.(Ports); ok {
		d.Freshness = p.Freshness
	}
	// keep untyped nils so a disabled backend reads as skipped
	if m.deps.PG != nil {
		d.PG = m.deps.PG
	}
	if m.deps.CH != nil {
		d.CH = m.deps.CH
	}
	modkit.Mount(r, m.built, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
