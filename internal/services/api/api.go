// Package api provides the HTTP API for the application
package api

import (
	"complaints/internal/platform/config"
	"complaints/internal/platform/logger"
	"complaints/internal/platform/metrics"
	phttp "complaints/internal/platform/net/http"
	"complaints/internal/platform/store"

	"complaints/internal/modkit"
	"complaints/internal/modkit/httpkit"
	"complaints/internal/modkit/module"
	"complaints/internal/modkit/swaggerkit"

	metamod "complaints/internal/services/api/meta/module"
	resultsdomain "complaints/internal/services/api/results/domain"
	resultsmod "complaints/internal/services/api/results/module"

	// worker module (owns the shared results store)
	freshmod "complaints/internal/services/freshness/module"

	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
// the freshness worker is registered under "freshness" for main to run
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// construct the freshness worker first and extract its reader port
	fresh := freshmod.New(deps, freshmod.Options{})
	reader := module.MustPortsOf[resultsdomain.FreshnessReader](fresh)

	// inject that reader into the results module
	results := resultsmod.New(
		deps,
		modkit.WithPorts(resultsmod.Ports{
			Freshness: reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Freshness: reader})),
		fresh, // include worker so its ports are registered
		results,
	}

	debug := phttp.DebugOptions{Profiler: opt.EnableProfiler}
	if opt.EnableMetrics {
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil && opt.Logger != nil {
			opt.Logger.Error().Err(err).Msg("metrics registration failed")
		}
		debug.Metrics = metrics.Handler()
	}

	// swagger, pprof and metrics live outside the versioned stack
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountDebug(r, debug)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
