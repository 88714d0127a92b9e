package domain

import (
	"context"

	"complaints/internal/core/resultstate"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (Panel, error)
	Resolve(ctx context.Context, in SnapshotInput) (Resolution, error)
	Status(ctx context.Context) (Status, error)
	Complaint(ctx context.Context, id string) (Complaint, error)
}

// FreshnessReader exposes the quality flags the freshness poller last published
type FreshnessReader interface {
	Current() resultstate.Freshness
}

// DocCounter reports how many documents the search index holds
type DocCounter interface {
	Count(ctx context.Context) (int, error)
}
