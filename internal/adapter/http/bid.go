package httpadapter

import (
	"net/http"

	"promo-auction/internal/core/port"
)

func (h *Handler) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body placeBidBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.PlaceBid(r.Context(), port.PlaceBidReq{
		CampaignID:     id,
		ProviderID:     provider,
		Amount:         body.BidAmount,
		TargetPosition: body.TargetPosition,
		AutoBid:        body.AutoBid,
		MaxBid:         body.MaxBid,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newBidResponse(b))
}

// handleHighestBid returns the campaign's effective bid, or 204 when it
// has none.
func (h *Handler) handleHighestBid(w http.ResponseWriter, r *http.Request) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err = h.svc.GetCampaign(r.Context(), id, provider); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.HighestActiveBid(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if b == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, newBidResponse(b))
}

func (h *Handler) handleWithdrawBid(w http.ResponseWriter, r *http.Request) {
	provider, err := providerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.WithdrawBid(r.Context(), id, provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBidResponse(b))
}
