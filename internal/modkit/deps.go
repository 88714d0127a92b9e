// Package modkit provides module wiring and core deps
package modkit

import (
	"complaints/internal/modkit/repokit"
	"complaints/internal/platform/config"
	"complaints/internal/platform/logger"
	"complaints/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// CH is nil when the columnar index is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
