package module

import (
	"time"

	"complaints/internal/platform/config"
)

// Options controls search behavior
type Options struct {
	DocCountTTL      time.Duration // cache window for the index document count
	StatementTimeout time.Duration // bound on every search statement
	MaxBody          int64         // cap on search and panel request bodies
}

// FromConfig reads DOCCOUNT_TTL, SEARCH_TIMEOUT and RESULTS_MAX_BODY from the api config
func FromConfig(cfg config.Conf) Options {
	return Options{
		DocCountTTL:      cfg.MayDuration("DOCCOUNT_TTL", time.Minute),
		StatementTimeout: cfg.MayDuration("SEARCH_TIMEOUT", 5*time.Second),
		MaxBody:          int64(cfg.MayInt("RESULTS_MAX_BODY", 1<<20)),
	}
}
