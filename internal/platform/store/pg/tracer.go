package pg

import (
	"context"
	"strings"

	"complaints/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
// only the argument count is kept, search terms never reach the log
type QueryEvent struct {
	SQL       string
	Args      int
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per executed statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs every statement regardless of the process-wide root level
// slow or failed statements log at warn
func Tracer(root logger.Logger) QueryTracer {
	return zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow || ev.Err != nil {
		evt = z.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Int("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// compact folds the whitespace of a multi-line query onto one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
