package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5/middleware"

	"warden/internal/backlog"
	"warden/internal/registry"
	"warden/pkg/platform/httputil"
)

// Scanner runs a backlog scan.
type Scanner interface {
	ScanAll(ctx context.Context, trigger backlog.Trigger) backlog.Summary
}

// GroupLister lists the registered groups.
type GroupLister interface {
	ListAll(ctx context.Context) ([]registry.Group, error)
}

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handler serves the admin endpoints.
type Handler struct {
	scanner Scanner
	groups  GroupLister
	checks  map[string]HealthCheck
	logger  *slog.Logger
}

func NewHandler(scanner Scanner, groups GroupLister, checks map[string]HealthCheck, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{scanner: scanner, groups: groups, checks: checks, logger: logger}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed", "check", name, "error", err)
			resp.Checks[name] = "fail"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	httputil.WriteJSON(w, status, resp)
}

func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.logger.InfoContext(ctx, "backlog scan requested over http", "request_id", middleware.GetReqID(ctx))

	summary := h.scanner.ScanAll(ctx, backlog.TriggerHTTP)
	httputil.WriteJSON(w, http.StatusOK, summary)
}

type groupResponse struct {
	ID         int64  `json:"id"`
	Network    string `json:"network"`
	Label      string `json:"label"`
	RegionCode *int   `json:"region_code,omitempty"`
	Legacy     bool   `json:"legacy"`
}

func (h *Handler) handleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groups, err := h.groups.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list groups", "error", err, "request_id", middleware.GetReqID(ctx))
		httputil.WriteError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse{
			ID:         g.ID.Int64(),
			Network:    string(g.Network),
			Label:      g.Label,
			RegionCode: g.RegionCode,
			Legacy:     g.Legacy,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
