// Package repo reads the index status the indexer publishes
package repo

import (
	"context"
	"errors"

	"complaints/internal/core/resultstate"
	"complaints/internal/modkit/repokit"
	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/store"
)

// Repo is the persistence surface for freshness
type Repo interface {
	// Latest returns the most recent index status, zero flags when none was written yet
	Latest(ctx context.Context) (resultstate.Freshness, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func scanStatus(r store.Row) (resultstate.Freshness, error) {
	var f resultstate.Freshness
	err := r.Scan(&f.LastIndexed, &f.IsDataStale, &f.IsNarrativeStale, &f.HasDataIssue)
	f.LastIndexed = f.LastIndexed.UTC()
	return f, err
}

func (r *queries) Latest(ctx context.Context) (resultstate.Freshness, error) {
	const sql = `
select last_indexed, is_data_stale, is_narrative_stale, has_data_issue
from index_status
order by last_indexed desc
limit 1
`
	f, err := store.One(ctx, r.q, scanStatus, sql)
	if errors.Is(err, perr.ErrNotFound) {
		return resultstate.Freshness{}, nil
	}
	if err != nil {
		return resultstate.Freshness{}, perr.FromPostgres(err, "index status read failed")
	}
	return f, nil
}
