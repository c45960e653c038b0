package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
)

type campaignResponse struct {
	ID              uuid.UUID             `json:"id"`
	ProviderID      uuid.UUID             `json:"provider_id"`
	ServiceID       uuid.UUID             `json:"service_id"`
	Name            string                `json:"name"`
	AdType          domain.AdType         `json:"ad_type"`
	BudgetType      domain.BudgetType     `json:"budget_type"`
	Budget          decimal.Decimal       `json:"budget"`
	Spent           decimal.Decimal       `json:"spent"`
	CurrentPosition *int                  `json:"current_position"`
	ActualCPC       *decimal.Decimal      `json:"actual_cpc"`
	Impressions     int64                 `json:"impressions"`
	Clicks          int64                 `json:"clicks"`
	Leads           int64                 `json:"leads"`
	Conversions     int64                 `json:"conversions"`
	Status          domain.CampaignStatus `json:"status"`
	StartDate       time.Time             `json:"start_date"`
	EndDate         time.Time             `json:"end_date"`
	Targeting       domain.Targeting      `json:"targeting"`
	Creative        domain.Creative       `json:"creative"`
	ActivatedAt     *time.Time            `json:"activated_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:              c.ID,
		ProviderID:      c.ProviderID,
		ServiceID:       c.ServiceID,
		Name:            c.Name,
		AdType:          c.AdType,
		BudgetType:      c.BudgetType,
		Budget:          c.Budget,
		Spent:           c.Spent,
		CurrentPosition: c.CurrentPosition,
		ActualCPC:       c.ActualCPC,
		Impressions:     c.Impressions,
		Clicks:          c.Clicks,
		Leads:           c.Leads,
		Conversions:     c.Conversions,
		Status:          c.Status,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Targeting:       c.Targeting,
		Creative:        c.Creative,
		ActivatedAt:     c.ActivatedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

type bidResponse struct {
	ID             uuid.UUID        `json:"id"`
	CampaignID     uuid.UUID        `json:"campaign_id"`
	BidAmount      decimal.Decimal  `json:"bid_amount"`
	TargetPosition int              `json:"target_position"`
	AutoBid        bool             `json:"auto_bid"`
	MaxBid         decimal.Decimal  `json:"max_bid"`
	Status         domain.BidStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

func newBidResponse(b *domain.Bid) bidResponse {
	return bidResponse{
		ID:             b.ID,
		CampaignID:     b.CampaignID,
		BidAmount:      b.Amount,
		TargetPosition: b.TargetPosition,
		AutoBid:        b.AutoBid,
		MaxBid:         b.MaxBid,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

type resolutionResponse struct {
	Segment     string              `json:"segment"`
	Assignments []domain.Assignment `json:"assignments"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error kinds to status codes. Anything
// unclassified is logged and reported as a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status = http.StatusInternalServerError
		body   = errorResponse{Error: err.Error()}
		verr   *domain.ValidationError
	)
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body.Field = verr.Field
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPermission):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrActivation):
		status = http.StatusPaymentRequired
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		body.Error = "internal error"
	}
	h.writeJSON(w, status, body)
}
