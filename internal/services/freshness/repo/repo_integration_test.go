//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/store"
	kit "complaints/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatest_Integration(t *testing.T) {
	dsn := kit.StartPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{AppName: "complaints-freshness-it", PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2, ConnectRetries: 10, PingTimeout: 3 * time.Second}})
	require.NoError(t, err)
	defer func() { _ = st.Close(context.Background()) }()

	r := NewPG().Bind(st.PG)

	_, err = r.Latest(ctx)
	assert.True(t, perr.IsUndefinedTable(err))

	_, err = st.PG.Exec(ctx, `
create table index_status (
  last_indexed timestamptz not null,
  is_data_stale boolean not null default false,
  is_narrative_stale boolean not null default false,
  has_data_issue boolean not null default false
)`)
	require.NoError(t, err)

	f, err := r.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, f.LastIndexed.IsZero(), "no row reads as clean flags")

	_, err = st.PG.Exec(ctx, `insert into index_status values
  ('2018-01-01T00:00:00Z', false, false, false),
  ('2018-02-01T00:00:00Z', false, true, true)`)
	require.NoError(t, err)

	f, err = r.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2018-02-01T00:00:00Z", f.LastIndexed.Format(time.RFC3339))
	assert.True(t, f.IsNarrativeStale)
	assert.True(t, f.HasDataIssue)
	assert.False(t, f.IsDataStale)
}
