// Package module wires the freshness poller and exposes its ports
package module

import (
	"complaints/internal/core/displaystate"
	"complaints/internal/core/resultstate"
	"complaints/internal/modkit"
	"complaints/internal/modkit/httpkit"
	"complaints/internal/modkit/repokit"
	"complaints/internal/platform/logger"
	"complaints/internal/platform/metrics"

	"complaints/internal/services/freshness/repo"
	"complaints/internal/services/freshness/service"
)

// Module defines the freshness module
type Module struct {
	deps  modkit.Deps
	ports Ports
	store *resultstate.Store
}

// New constructs the freshness module, non zero overrides win over config
func New(deps modkit.Deps, overrides Options) *Module {
	if deps.PG == nil {
		panic("freshness module requires a postgres TxRunner")
	}
	opts := FromConfig(deps.Cfg)
	if overrides.Every != 0 {
		opts.Every = overrides.Every
	}
	if overrides.MaxAge != 0 {
		opts.MaxAge = overrides.MaxAge
	}
	if overrides.ReadTimeout != 0 {
		opts.ReadTimeout = overrides.ReadTimeout
	}

	// the shared store models a populated page so its banner is the one the flags alone produce
	st := resultstate.NewStore(resultstate.State{Snapshot: displaystate.Snapshot{ItemCount: 1}})
	st.Subscribe(service.LogBannerChanges(logger.Named("freshness")))
	st.Subscribe(service.GaugeBanner())
	// listeners only see dispatches, a clean first poll dispatches nothing
	metrics.SetBanner(st.State().Variant().Kind)

	db := repokit.WithBeginHooks(deps.PG, repokit.ReadOnly)
	svc := service.New(db, repo.NewPG(), st, service.Config{
		Every:       opts.Every,
		MaxAge:      opts.MaxAge,
		ReadTimeout: opts.ReadTimeout,
	})

	m := &Module{deps: deps, store: st}
	m.ports = Ports{
		Worker: svc,
		Poller: svc,
		Reader: svc,
	}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "freshness" }

// Ports returns the module ports (Worker, Poller, Reader)
func (m *Module) Ports() any { return m.ports }

// Store returns the shared results store the poller publishes into
func (m *Module) Store() *resultstate.Store { return m.store }

// Prefix returns the module route prefix (none for freshness)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes for freshness (it's a background worker)
func (m *Module) MountRoutes(_ httpkit.Router) {}
