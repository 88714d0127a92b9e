// Package service contains results workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"complaints/internal/core/displaystate"
	"complaints/internal/core/normalize"
	"complaints/internal/core/resultstate"
	"complaints/internal/modkit/repokit"
	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/logger"
	ptime "complaints/internal/platform/time"
	"complaints/internal/services/api/results/domain"
	"complaints/internal/services/api/results/repo"
)

// Service defines the results service contract
type Service interface {
	domain.ServicePort
}

// Observer is told about every resolved search
type Observer interface {
	SearchResolved(kind displaystate.Kind, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) SearchResolved(displaystate.Kind, time.Duration) {}

// Svc implements the results service
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	fresh  domain.FreshnessReader
	docs   domain.DocCounter
	obs    Observer
	now    func() time.Time
}

// Option configures a Svc
type Option func(*Svc)

// WithObserver reports resolved searches to o
func WithObserver(o Observer) Option {
	return func(s *Svc) {
		if o != nil {
			s.obs = o
		}
	}
}

// New constructs a results service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], fresh domain.FreshnessReader, docs domain.DocCounter, opts ...Option) *Svc {
	if db == nil {
		panic("results.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("results.Service requires a non nil Repo binder")
	}
	if fresh == nil {
		panic("results.Service requires a non nil FreshnessReader")
	}
	if docs == nil {
		panic("results.Service requires a non nil DocCounter")
	}
	s := &Svc{binder: binder, db: db, fresh: fresh, docs: docs, obs: nopObserver{}, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search runs one page query and resolves its banner
// backend failures become the error banner, only a cancelled request returns an error
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Panel, error) {
	start := s.now()
	q := resultstate.Query{From: in.From, Size: in.PageSize(), Narratives: in.ShowsNarratives()}

	fresh := s.fresh.Current()
	if !q.Narratives {
		fresh.IsNarrativeStale = false
	}

	st := resultstate.NewStore(resultstate.State{})
	st.Dispatch(resultstate.FreshnessChanged{Freshness: fresh})
	st.Dispatch(resultstate.SearchStarted{Query: q})

	page, docCount, err := s.fetch(ctx, filterFrom(in, q))
	if err != nil && ctx.Err() != nil {
		return domain.Panel{}, ctx.Err()
	}

	var final resultstate.State
	if err != nil {
		logger.C(ctx).Warn().Err(err).Int("from", q.From).Int("size", q.Size).Msg("results: search failed")
		final = st.Dispatch(resultstate.SearchFailed{Message: perr.Display(err)})
	} else {
		final = st.Dispatch(resultstate.SearchSucceeded{Items: len(page.Items), Total: page.Total, DocCount: docCount})
	}

	v := final.Variant()
	s.obs.SearchResolved(v.Kind, s.now().Sub(start))

	out := domain.Panel{
		Variant:     v,
		Items:       []domain.Complaint{},
		Total:       final.Snapshot.Total,
		DocCount:    final.Snapshot.DocCount,
		From:        q.From,
		Size:        q.Size,
		LastIndexed: ptime.RFC3339(final.LastIndexed),
	}
	if v.Kind.ShowsItems() {
		out.Items = page.Items
	}
	return out, nil
}

// fetch runs the count, page and agreement queries in one transaction
func (s *Svc) fetch(ctx context.Context, f repo.Filter) (repo.Page, int, error) {
	var page repo.Page
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		var e error
		page, e = r.Search(ctx, f)
		if e != nil {
			return e
		}
		ags, e := r.Agreements(ctx, uniq(page.Keys))
		if e != nil {
			return e
		}
		for i := range page.Items {
			page.Items[i].Agreements = ags[page.Keys[i]]
			if page.Items[i].Agreements == nil {
				page.Items[i].Agreements = []domain.Agreement{}
			}
		}
		return nil
	})
	if err != nil {
		return repo.Page{}, 0, err
	}
	n, err := s.docs.Count(ctx)
	if err != nil {
		return repo.Page{}, 0, err
	}
	return page, n, nil
}

// Resolve picks the banner for a caller supplied snapshot
func (s *Svc) Resolve(_ context.Context, in domain.SnapshotInput) (domain.Resolution, error) {
	v := displaystate.Resolve(in.Snapshot())
	out := domain.Resolution{
		Variant:  v,
		Items:    []json.RawMessage{},
		Total:    in.Total,
		DocCount: in.DocCount,
	}
	if v.Kind.ShowsItems() {
		out.Items = in.Items
	}
	return out, nil
}

// Status reports the flags the next search will be resolved with
func (s *Svc) Status(_ context.Context) (domain.Status, error) {
	f := s.fresh.Current()
	return domain.Status{
		Variant:          f.Banner(),
		IsDataStale:      f.IsDataStale,
		IsNarrativeStale: f.IsNarrativeStale,
		HasDataIssue:     f.HasDataIssue,
		LastIndexed:      ptime.RFC3339(f.LastIndexed),
	}, nil
}

// Complaint returns one complaint with its agreements
func (s *Svc) Complaint(ctx context.Context, id string) (domain.Complaint, error) {
	if id == "" {
		return domain.Complaint{}, perr.InvalidArgf("complaint id is required")
	}
	var out domain.Complaint
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		out, e = repokit.MustBind(s.binder, q).Complaint(ctx, id)
		return e
	})
	return out, err
}

func filterFrom(in domain.SearchInput, q resultstate.Query) repo.Filter {
	return repo.Filter{
		From:         q.From,
		Size:         q.Size,
		Term:         in.SearchTerm,
		Companies:    normalize.Keys(in.Company),
		Products:     normalize.Keys(in.Product),
		States:       uniq(in.State),
		HasNarrative: in.HasNarrative,
	}
}

func uniq(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
