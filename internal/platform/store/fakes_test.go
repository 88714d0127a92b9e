package store

import (
	"context"
	"errors"
)

type fakeRows struct {
	data [][]any
	cols []string
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return r.cols }

type fakeQuerier struct {
	rows    *fakeRows
	scalar  int
	err     error
	pingErr error
	closed  bool
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, q.err }

func (q *fakeQuerier) Query(context.Context, string, ...any) (Rows, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func (q *fakeQuerier) QueryRow(context.Context, string, ...any) Row { return scalarRow{v: q.scalar, err: q.err} }

func (q *fakeQuerier) Tx(ctx context.Context, fn func(RowQuerier) error) error { return fn(q) }

func (q *fakeQuerier) Ping(context.Context) error { return q.pingErr }

func (q *fakeQuerier) Close() error { q.closed = true; return nil }

type scalarRow struct {
	v   int
	err error
}

func (r scalarRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.v
	return nil
}

type fakeCH struct {
	pingErr error
	closed  bool
}

func (c *fakeCH) Query(context.Context, string, ...any) (Rows, error) { return &fakeRows{}, nil }
func (c *fakeCH) Ping(context.Context) error                         { return c.pingErr }
func (c *fakeCH) Close() error                                       { c.closed = true; return nil }
