package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdType is the promotional product a campaign buys.
type AdType string

const (
	AdTypeQuickBoost   AdType = "quick-boost"
	AdTypeBanner       AdType = "banner"
	AdTypeFeatured     AdType = "featured"
	AdTypeSponsored    AdType = "sponsored"
	AdTypePremiumBadge AdType = "premium-badge"
	AdTypeTopSearch    AdType = "top-search"
)

// minimumBudgets holds the smallest budget accepted per ad type.
var minimumBudgets = map[AdType]decimal.Decimal{
	AdTypeQuickBoost:   decimal.NewFromInt(5),
	AdTypeFeatured:     decimal.NewFromInt(10),
	AdTypeSponsored:    decimal.NewFromInt(15),
	AdTypePremiumBadge: decimal.NewFromInt(20),
	AdTypeBanner:       decimal.NewFromInt(25),
	AdTypeTopSearch:    decimal.NewFromInt(50),
}

// Valid reports whether t is one of the known ad types.
func (t AdType) Valid() bool {
	_, ok := minimumBudgets[t]
	return ok
}

// MinimumBudget returns the lowest budget a campaign of this type may carry.
func (t AdType) MinimumBudget() decimal.Decimal {
	return minimumBudgets[t]
}

// AuctionEligible reports whether campaigns of this type compete for
// positions. Quick-boost, sponsored and premium-badge are fixed price.
func (t AdType) AuctionEligible() bool {
	switch t {
	case AdTypeBanner, AdTypeFeatured, AdTypeTopSearch:
		return true
	default:
		return false
	}
}

// BudgetType describes how the budget is consumed by billing.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetTotal    BudgetType = "total"
	BudgetPerClick BudgetType = "per-click"
	BudgetPerLead  BudgetType = "per-lead"
)

func (t BudgetType) Valid() bool {
	switch t {
	case BudgetDaily, BudgetTotal, BudgetPerClick, BudgetPerLead:
		return true
	default:
		return false
	}
}

// CampaignStatus is a lifecycle state.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusCancelled CampaignStatus = "cancelled"
)

// Terminal reports whether no further transitions are possible.
func (s CampaignStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Counters are the performance totals maintained by the tracking pipeline.
// The engine only reads them.
type Counters struct {
	Impressions int64
	Clicks      int64
	Leads       int64
	Conversions int64
}

// Campaign represents a provider's request to promote one of its services.
// Money values are decimals in the platform currency.
type Campaign struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	Name       string
	AdType     AdType
	BudgetType BudgetType
	Budget     decimal.Decimal
	Spent      decimal.Decimal

	// CurrentPosition and ActualCPC are written only by the auction resolver.
	CurrentPosition *int
	ActualCPC       *decimal.Decimal

	Counters
	Status    CampaignStatus
	StartDate time.Time
	EndDate   time.Time
	Targeting Targeting
	Creative  Creative

	PaymentMethodID string
	ActivatedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Version increases with every edit and status change.
	Version int64
}

// Competes reports whether the campaign currently takes part in auctions.
func (c *Campaign) Competes() bool {
	return c.Status == StatusActive && c.AdType.AuctionEligible()
}

// ClearAuctionState drops the resolver-owned fields.
func (c *Campaign) ClearAuctionState() {
	c.CurrentPosition = nil
	c.ActualCPC = nil
}

// OwnedBy reports whether providerID owns the campaign.
func (c *Campaign) OwnedBy(providerID uuid.UUID) bool {
	return c.ProviderID == providerID
}
