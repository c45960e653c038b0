package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	provider, err := providerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body createCampaignBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), body.toReq(provider))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(c))
}

func (h *Handler) handleQuickBoost(w http.ResponseWriter, r *http.Request) {
	provider, err := providerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body quickBoostBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateQuickBoost(r.Context(), port.QuickBoostReq{
		ProviderID:      provider,
		ServiceID:       body.ServiceID,
		Hours:           body.Hours,
		Targeting:       body.Targeting,
		Creative:        body.Creative,
		PaymentMethodID: body.PaymentMethodID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	provider, err := providerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cs, err := h.svc.ListProviderCampaigns(r.Context(), provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, len(cs))
	for i := range cs {
		out[i] = newCampaignResponse(&cs[i])
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.svc.GetCampaign)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body updateCampaignBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), body.toReq(id, provider))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body activateBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.ActivateCampaign(r.Context(), port.ActivateReq{
		CampaignID:      id,
		ProviderID:      provider,
		PaymentMethodID: body.PaymentMethodID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.svc.PauseCampaign)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.svc.ResumeCampaign)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.svc.CancelCampaign)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.svc.CompleteCampaign)
}

// campaignAction serves the routes that take nothing but the campaign id
// and the acting provider.
func (h *Handler) campaignAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error),
) {
	id, provider, err := campaignRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := action(r.Context(), id, provider)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}
