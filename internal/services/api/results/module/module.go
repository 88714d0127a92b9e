// Package module wires results into the API using modkit
package module

import (
	"complaints/internal/core/displaystate"
	modkit "complaints/internal/modkit"
	"complaints/internal/modkit/httpkit"
	"complaints/internal/modkit/repokit"
	"complaints/internal/modkit/swaggerkit"
	"complaints/internal/platform/metrics"
	"complaints/internal/platform/net/middleware"
	str "complaints/internal/platform/strings"

	rhttp "complaints/internal/services/api/results/http"
	"complaints/internal/services/api/results/domain"
	rrepo "complaints/internal/services/api/results/repo"
	rsvc "complaints/internal/services/api/results/service"
)

// Module implements the results module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports any

	svc rsvc.Service
}

// Ports declares the injected freshness port this module reads flags from
type Ports struct {
	Freshness domain.FreshnessReader
}

// New constructs the results module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := FromConfig(deps.Cfg)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("results"),
		modkit.WithPrefix("/results"),
		modkit.WithMiddlewares(middleware.RequestSize(cfg.MaxBody)),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Freshness == nil {
		panic("results API module requires Freshness port (from services/freshness)")
	}

	if deps.PG == nil {
		panic("results API module requires a postgres TxRunner")
	}

	count := rrepo.PGCount(deps.PG)
	if deps.CH != nil {
		count = rrepo.CHCount(deps.CH)
	}

	db := repokit.WithBeginHooks(deps.PG,
		repokit.ReadOnly,
		repokit.StatementTimeout(int(cfg.StatementTimeout.Milliseconds())),
	)
	svc := rsvc.New(db, rrepo.NewPG(), injected.Freshness,
		rrepo.NewDocCounter(count, cfg.DocCountTTL),
		rsvc.WithObserver(metrics.Recorder{}),
	)

	m := &Module{deps: deps, built: b, svc: svc}
	m.ports = adaptResultsPort{svc: svc}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	modkit.Mount(r, m.built, func(rr httpkit.Router) { rhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

func init() {
	// the variant kind enum is owned by displaystate, keep the docs in step with it
	swaggerkit.Register(func(spec map[string]any) {
		comps, _ := spec["components"].(map[string]any)
		schemas, _ := comps["schemas"].(map[string]any)
		variant, _ := schemas["Variant"].(map[string]any)
		props, _ := variant["properties"].(map[string]any)
		kind, ok := props["kind"].(map[string]any)
		if !ok {
			return
		}
		enum := make([]any, 0, len(displaystate.Kinds()))
		for _, k := range displaystate.Kinds() {
			enum = append(enum, k.String())
		}
		kind["enum"] = enum
	})
}
