package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/port"
)

const providerHeader = "X-Provider-ID"

type createCampaignBody struct {
	ServiceID  uuid.UUID        `json:"service_id"`
	Name       string           `json:"name"`
	AdType     string           `json:"ad_type"`
	BudgetType string           `json:"budget_type"`
	Budget     decimal.Decimal  `json:"budget"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    time.Time        `json:"end_date"`
	Targeting  domain.Targeting `json:"targeting"`
	Creative   domain.Creative  `json:"creative"`
}

type updateCampaignBody struct {
	Name       *string           `json:"name"`
	AdType     *string           `json:"ad_type"`
	BudgetType *string           `json:"budget_type"`
	Budget     *decimal.Decimal  `json:"budget"`
	StartDate  *time.Time        `json:"start_date"`
	EndDate    *time.Time        `json:"end_date"`
	Targeting  *domain.Targeting `json:"targeting"`
	Creative   *domain.Creative  `json:"creative"`
}

type quickBoostBody struct {
	ServiceID       uuid.UUID        `json:"service_id"`
	Hours           int              `json:"hours"`
	Targeting       domain.Targeting `json:"targeting"`
	Creative        domain.Creative  `json:"creative"`
	PaymentMethodID string           `json:"payment_method_id"`
}

type activateBody struct {
	PaymentMethodID string `json:"payment_method_id"`
}

type placeBidBody struct {
	BidAmount      decimal.Decimal  `json:"bid_amount"`
	TargetPosition int              `json:"target_position"`
	AutoBid        bool             `json:"auto_bid"`
	MaxBid         *decimal.Decimal `json:"max_bid"`
}

type resolveSegmentBody struct {
	AdType   string `json:"ad_type"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// decodeJSON reads the request body into v. An empty body leaves v as is.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return domain.Invalid("body", "is not valid JSON: %v", err)
	}
	return nil
}

func providerID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(providerHeader))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing %s header", domain.ErrPermission, providerHeader)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed %s header", domain.ErrPermission, providerHeader)
	}
	return id, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Invalid("id", "must be a UUID")
	}
	return id, nil
}

// campaignRequest resolves the provider and path id shared by the
// campaign routes.
func campaignRequest(r *http.Request) (campaignID, provider uuid.UUID, err error) {
	if provider, err = providerID(r); err != nil {
		return
	}
	campaignID, err = pathID(r)
	return
}

func (b createCampaignBody) toReq(provider uuid.UUID) port.CreateCampaignReq {
	return port.CreateCampaignReq{
		ProviderID: provider,
		ServiceID:  b.ServiceID,
		Name:       b.Name,
		AdType:     domain.AdType(b.AdType),
		BudgetType: domain.BudgetType(b.BudgetType),
		Budget:     b.Budget,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Targeting:  b.Targeting,
		Creative:   b.Creative,
	}
}

func (b updateCampaignBody) toReq(campaignID, provider uuid.UUID) port.UpdateCampaignReq {
	req := port.UpdateCampaignReq{
		CampaignID: campaignID,
		ProviderID: provider,
		Name:       b.Name,
		Budget:     b.Budget,
		Targeting:  b.Targeting,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Creative:   b.Creative,
	}
	if b.AdType != nil {
		t := domain.AdType(*b.AdType)
		req.AdType = &t
	}
	if b.BudgetType != nil {
		t := domain.BudgetType(*b.BudgetType)
		req.BudgetType = &t
	}
	return req
}
