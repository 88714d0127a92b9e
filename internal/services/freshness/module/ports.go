package module

import "complaints/internal/services/freshness/domain"

// Ports defines freshness module ports exposed via the registry
type Ports struct {
	Worker domain.WorkerPort
	Poller domain.PollerPort
	Reader domain.ReaderPort
}
