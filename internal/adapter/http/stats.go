package httpadapter

import (
	"net/http"

	"promo-auction/internal/core/domain"
)

// handleCampaignMetrics returns the derived KPIs of one campaign.
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.svc.GetCampaignMetrics(r.Context(), id, provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

// handleStatsOverview returns the aggregate statistics of the calling
// provider's campaigns.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	provider, err := providerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	stats, err := h.svc.GetAggregateStats(r.Context(), provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleResolveSegment runs a resolution pass on demand, e.g. after the
// tracking pipeline refreshed counters.
func (h *Handler) handleResolveSegment(w http.ResponseWriter, r *http.Request) {
	var body resolveSegmentBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	key := domain.SegmentKey{AdType: domain.AdType(body.AdType)}
	t := domain.Targeting{Category: body.Category, Location: body.Location}.Normalize()
	key.Category, key.Location = t.Category, t.Location

	res, err := h.svc.ResolveSegment(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := resolutionResponse{Segment: res.Segment.String(), Assignments: res.Assignments}
	if out.Assignments == nil {
		out.Assignments = []domain.Assignment{}
	}
	h.writeJSON(w, http.StatusOK, out)
}
