// Package service polls the index status and publishes it into the shared results store
package service

import (
	"context"
	"time"

	"complaints/internal/core/resultstate"
	"complaints/internal/modkit/repokit"
	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/logger"
	"complaints/internal/services/freshness/repo"
)

// Config holds the poll knobs
type Config struct {
	Every       time.Duration // poll interval
	MaxAge      time.Duration // data is stale once the last index is older, 0 disables
	ReadTimeout time.Duration // bound on a single status read
}

// Svc implements the freshness ports
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	store  *resultstate.Store
	config Config
	now    func() time.Time
	log    *logger.Logger
}

// New constructs a freshness service publishing into st
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], st *resultstate.Store, cfg Config) *Svc {
	if db == nil {
		panic("freshness.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("freshness.Service requires a non nil Repo binder")
	}
	if st == nil {
		panic("freshness.Service requires a non nil results store")
	}
	if cfg.Every <= 0 {
		cfg.Every = 30 * time.Second
	}
	return &Svc{binder: binder, db: db, store: st, config: cfg, now: time.Now, log: logger.Named("freshness")}
}

// Current returns the flags last published
func (s *Svc) Current() resultstate.Freshness { return s.store.State().Freshness() }

// RunOnce reads the index status and dispatches it when it differs from the current flags
// on error the current flags are returned untouched
func (s *Svc) RunOnce(ctx context.Context) (resultstate.Freshness, error) {
	if s.config.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ReadTimeout)
		defer cancel()
	}

	var f resultstate.Freshness
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		f, e = repokit.MustBind(s.binder, q).Latest(ctx)
		return e
	})
	if err != nil {
		return s.Current(), err
	}

	f = s.aged(f)
	if !f.Equal(s.Current()) {
		s.store.Dispatch(resultstate.FreshnessChanged{Freshness: f})
	}
	return f, nil
}

// aged forces the data stale flag once the last index is older than MaxAge
func (s *Svc) aged(f resultstate.Freshness) resultstate.Freshness {
	if s.config.MaxAge <= 0 || f.LastIndexed.IsZero() {
		return f
	}
	if s.now().Sub(f.LastIndexed) > s.config.MaxAge {
		f.IsDataStale = true
	}
	return f
}

// Run polls until ctx is done, read failures are logged and the previous flags stay in place
func (s *Svc) Run(ctx context.Context) error {
	s.poll(ctx)

	t := time.NewTicker(s.config.Every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.poll(ctx)
		}
	}
}

// poll logs transient read failures at warn, anything else needs an operator
func (s *Svc) poll(ctx context.Context) {
	_, err := s.RunOnce(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}
	evt := s.log.Error()
	if perr.IsRetryable(err) {
		evt = s.log.Warn()
	}
	evt.Err(err).Msg("index status read failed, keeping previous flags")
}
