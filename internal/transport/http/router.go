// Package httptransport serves the operator surface: health, metrics and the
// manual backlog scan trigger.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warden/pkg/platform/middleware/admin"
	"warden/pkg/platform/middleware/requesttime"
)

// RouterConfig carries the pieces NewRouter mounts beside the handler.
type RouterConfig struct {
	Gatherer   prometheus.Gatherer
	AdminToken string
	Logger     *slog.Logger
}

// NewRouter wires the admin endpoints.
//
//	GET  /healthz       liveness plus dependency checks
//	GET  /metrics       Prometheus exposition
//	POST /admin/scan    run a backlog scan and return its summary
//	GET  /admin/groups  list the registered groups
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/admin", func(r chi.Router) {
		r.Use(admin.RequireAdminToken(cfg.AdminToken, logger))
		// Scans can take minutes; the server write timeout bounds them.
		r.With(middleware.Timeout(10*time.Minute)).Post("/scan", h.handleScan)
		r.Get("/groups", h.handleListGroups)
	})
	return r
}
