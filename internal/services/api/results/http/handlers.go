// Package http provides http transport for results
package http

import (
	stdhttp "net/http"

	"complaints/internal/modkit/httpkit"
	"complaints/internal/services/api/results/domain"
	svc "complaints/internal/services/api/results/service"
)

// Register mounts results endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one page of complaints with its banner
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)

	// banner for a caller supplied snapshot
	httpkit.PostJSON[domain.SnapshotInput](r, "/panel", h.panel)

	httpkit.Get(r, "/status", h.status)
	httpkit.Get(r, "/complaint/{id}", h.complaint)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /results/search Results resultsSearch
// @Summary Search complaints and resolve the panel banner
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.Panel "ok"
// @Router /results/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route POST /results/panel Results resultsPanel
// @Summary Resolve the banner for a results snapshot
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body domain.SnapshotInput true "Snapshot"
// @Success 200 {object} domain.Resolution "ok"
// @Router /results/panel [post]
func (h *handlers) panel(r *stdhttp.Request, in domain.SnapshotInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

// swagger:route GET /results/status Results resultsStatus
// @Summary Dataset quality flags applied to searches
// @Tags Results
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /results/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.svc.Status(r.Context())
}

// swagger:route GET /results/complaint/{id} Results resultsComplaint
// @Summary One complaint with its agreements
// @Tags Results
// @Produce json
// @Param id path string true "Complaint id"
// @Success 200 {object} domain.Complaint "ok"
// @Router /results/complaint/{id} [get]
func (h *handlers) complaint(r *stdhttp.Request) (any, error) {
	return h.svc.Complaint(r.Context(), httpkit.Param(r, "id"))
}
