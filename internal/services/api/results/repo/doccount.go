package repo

import (
	"context"
	"sync"
	"time"

	"complaints/internal/modkit/repokit"
	perr "complaints/internal/platform/errors"
	"complaints/internal/platform/store"

	"golang.org/x/sync/singleflight"
)

// CountFunc returns the current number of indexed documents
type CountFunc func(ctx context.Context) (int, error)

// CHCount counts rows of the columnar search index
func CHCount(ch store.Clickhouse) CountFunc {
	return func(ctx context.Context) (int, error) {
		rows, err := ch.Query(ctx, `select count() from complaints_index`)
		if err != nil {
			return 0, perr.Indexf(err, "search index unavailable")
		}
		defer rows.Close()
		var n uint64
		if rows.Next() {
			if err := rows.Scan(&n); err != nil {
				return 0, perr.Indexf(err, "search index unavailable")
			}
		}
		if err := rows.Err(); err != nil {
			return 0, perr.Indexf(err, "search index unavailable")
		}
		return int(n), nil
	}
}

// PGCount counts rows of the complaints table
func PGCount(db repokit.Queryer) CountFunc {
	return func(ctx context.Context) (int, error) {
		n, err := store.Scalar[int64](ctx, db, `select count(*) from complaints`)
		if err != nil {
			return 0, wrap(err, "document count failed")
		}
		return int(n), nil
	}
}

// DocCounter caches a CountFunc result for a fixed ttl
// concurrent refreshes share one call and a failed refresh drops the stale value
type DocCounter struct {
	count CountFunc
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu  sync.Mutex
	val int
	at  time.Time
	ok  bool
}

// NewDocCounter wraps count with a ttl cache, ttl <= 0 disables caching
func NewDocCounter(count CountFunc, ttl time.Duration) *DocCounter {
	if count == nil {
		panic("results.DocCounter requires a non nil CountFunc")
	}
	return &DocCounter{count: count, ttl: ttl, now: time.Now}
}

// Count returns the cached count or refreshes it
// a caller waiting on a shared refresh gives up when its own ctx is done
func (d *DocCounter) Count(ctx context.Context) (int, error) {
	if n, ok := d.cached(); ok {
		return n, nil
	}

	ch := d.group.DoChan("count", func() (any, error) {
		n, err := d.count(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.ok = false
			return 0, err
		}
		d.val, d.at, d.ok = n, d.now(), true
		return n, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

func (d *DocCounter) cached() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ok && d.ttl > 0 && d.now().Sub(d.at) < d.ttl {
		return d.val, true
	}
	return 0, false
}
