package module

import (
	"time"

	"complaints/internal/platform/config"
)

// Options controls the freshness poller, values may also be read from env
type Options struct {
	Every       time.Duration
	MaxAge      time.Duration
	ReadTimeout time.Duration
}

// FromConfig reads FRESHNESS_* values from the api config
func FromConfig(cfg config.Conf) Options {
	fc := cfg.Prefix("FRESHNESS_")
	return Options{
		Every:       fc.MayDuration("EVERY", 30*time.Second),
		MaxAge:      fc.MayDuration("MAX_AGE", 0),
		ReadTimeout: fc.MayDuration("READ_TIMEOUT", 5*time.Second),
	}
}
