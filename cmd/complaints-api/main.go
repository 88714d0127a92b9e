// @title         Complaints API
// @version       0.1.0
// @description   Read only complaint search with a results panel banner

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"complaints/internal/core/version"
	"complaints/internal/modkit/module"
	"complaints/internal/modkit/repokit"
	"complaints/internal/platform/config"
	"complaints/internal/platform/logger"
	phttp "complaints/internal/platform/net/http"
	"complaints/internal/platform/store"

	"complaints/internal/services/api"
	freshmod "complaints/internal/services/freshness/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()
	l.Info().Interface("build", version.Info()).Msg("starting")

	// open the platform store (postgres + optional clickhouse index)
	st, err := store.Open(ctx, store.ConfigFromEnv(version.ServiceName, root), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	// freshness poller feeds the banner flags
	fresh, ok := module.PortsAs[freshmod.Ports]("freshness")
	if !ok {
		l.Panic().Msg("freshness ports not registered")
	}
	go func() {
		if err := fresh.Worker.Run(ctx); err != nil && ctx.Err() == nil {
			l.Error().Err(err).Msg("freshness worker stopped")
		}
	}()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
