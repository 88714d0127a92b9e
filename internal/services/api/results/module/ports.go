package module

import (
	"context"

	"complaints/internal/services/api/results/domain"
	rsvc "complaints/internal/services/api/results/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptResultsPort struct{ svc rsvc.Service }

// Search runs one page query and resolves its banner
func (a adaptResultsPort) Search(ctx context.Context, in domain.SearchInput) (domain.Panel, error) {
	return a.svc.Search(ctx, in)
}

// Resolve picks the banner for a caller supplied snapshot
func (a adaptResultsPort) Resolve(ctx context.Context, in domain.SnapshotInput) (domain.Resolution, error) {
	return a.svc.Resolve(ctx, in)
}

// Status reports the current dataset flags
func (a adaptResultsPort) Status(ctx context.Context) (domain.Status, error) {
	return a.svc.Status(ctx)
}

// Complaint returns one complaint with its agreements
func (a adaptResultsPort) Complaint(ctx context.Context, id string) (domain.Complaint, error) {
	return a.svc.Complaint(ctx, id)
}
