package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/metrics"
)

// CampaignUseCase defines the business operations exposed by the auction
// engine. It is the primary port into the application domain. Every
// operation acting on an existing campaign takes the acting provider and
// fails with domain.ErrPermission when it does not own the campaign.
type CampaignUseCase interface {
	// CreateCampaign validates req and stores a draft campaign.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// CreateQuickBoost creates an already active, fixed-price campaign with
	// a short duration. Quick boosts never enter an auction.
	CreateQuickBoost(ctx context.Context, req QuickBoostReq) (*domain.Campaign, error)

	// ActivateCampaign moves a draft campaign to active after validating
	// its budget, dates and payment method. Auction-eligible campaigns are
	// ranked in their segment before it returns. On failure the campaign is
	// left in draft.
	ActivateCampaign(ctx context.Context, req ActivateReq) (*domain.Campaign, error)

	// PauseCampaign moves an active campaign to paused.
	PauseCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error)

	// ResumeCampaign moves a paused campaign back to active.
	ResumeCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error)

	// CancelCampaign ends a draft, active or paused campaign.
	CancelCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error)

	// CompleteCampaign ends an active campaign.
	CompleteCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error)

	// UpdateCampaign edits a campaign. Once a campaign has left draft only
	// budget, end date, targeting and creative may change.
	UpdateCampaign(ctx context.Context, req UpdateCampaignReq) (*domain.Campaign, error)

	// GetCampaign returns one campaign.
	GetCampaign(ctx context.Context, campaignID, providerID uuid.UUID) (*domain.Campaign, error)

	// ListProviderCampaigns returns all campaigns of a provider.
	ListProviderCampaigns(ctx context.Context, providerID uuid.UUID) ([]domain.Campaign, error)

	// PlaceBid appends a bid to an active, auction-eligible campaign and
	// re-ranks its segment. A rejected bid never triggers ranking.
	PlaceBid(ctx context.Context, req PlaceBidReq) (*domain.Bid, error)

	// WithdrawBid withdraws an active bid and re-ranks the segment.
	WithdrawBid(ctx context.Context, bidID, providerID uuid.UUID) (*domain.Bid, error)

	// HighestActiveBid returns the campaign's effective bid, or nil when it
	// has no active bid.
	HighestActiveBid(ctx context.Context, campaignID uuid.UUID) (*domain.Bid, error)

	// GetCampaignMetrics derives KPIs from the campaign's counters.
	GetCampaignMetrics(ctx context.Context, campaignID, providerID uuid.UUID) (*metrics.Metrics, error)

	// GetAggregateStats summarises every campaign of a provider.
	GetAggregateStats(ctx context.Context, providerID uuid.UUID) (*AggregateStats, error)

	// ResolveSegment re-ranks a segment on demand, e.g. after counters or
	// listings changed.
	ResolveSegment(ctx context.Context, key domain.SegmentKey) (*domain.Resolution, error)
}

// CreateCampaignReq is the input of CreateCampaign.
type CreateCampaignReq struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	Name       string
	AdType     domain.AdType
	BudgetType domain.BudgetType
	Budget     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Targeting  domain.Targeting
	Creative   domain.Creative
}

// QuickBoostReq is the input of CreateQuickBoost. Hours is the boost
// duration.
type QuickBoostReq struct {
	ProviderID      uuid.UUID
	ServiceID       uuid.UUID
	Hours           int
	Targeting       domain.Targeting
	Creative        domain.Creative
	PaymentMethodID string
}

// ActivateReq is the input of ActivateCampaign.
type ActivateReq struct {
	CampaignID      uuid.UUID
	ProviderID      uuid.UUID
	PaymentMethodID string
}

// UpdateCampaignReq carries the fields to change; nil means unchanged.
type UpdateCampaignReq struct {
	CampaignID uuid.UUID
	ProviderID uuid.UUID
	Name       *string
	AdType     *domain.AdType
	BudgetType *domain.BudgetType
	Budget     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	Targeting  *domain.Targeting
	Creative   *domain.Creative
}

// PlaceBidReq is the input of PlaceBid. MaxBid defaults to Amount.
type PlaceBidReq struct {
	CampaignID     uuid.UUID
	ProviderID     uuid.UUID
	Amount         decimal.Decimal
	TargetPosition int
	AutoBid        bool
	MaxBid         *decimal.Decimal
}

// AggregateStats summarises a provider's campaigns. Averages are weighted
// by the summed counters, not averaged per campaign.
type AggregateStats struct {
	TotalCampaigns  int             `json:"total_campaigns"`
	ActiveCampaigns int             `json:"active_campaigns"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	AverageCTR      decimal.Decimal `json:"average_ctr"`
	AverageCPC      decimal.Decimal `json:"average_cpc"`
	AverageCPL      decimal.Decimal `json:"average_cpl"`
	ROI             decimal.Decimal `json:"roi"`
}
