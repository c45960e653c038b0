package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"promo-auction/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every campaign route acts on behalf of the provider named in the
// X-Provider-ID header.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Post("/quick-boost", h.handleQuickBoost)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Post("/activate", h.handleActivate)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/cancel", h.handleCancel)
				r.Post("/complete", h.handleComplete)
				r.Post("/bids", h.handlePlaceBid)
				r.Get("/bids/highest", h.handleHighestBid)
				r.Get("/metrics", h.handleCampaignMetrics)
			})
		})
		r.Post("/bids/{id}/withdraw", h.handleWithdrawBid)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Post("/segments/resolve", h.handleResolveSegment)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
