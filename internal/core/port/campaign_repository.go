package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"promo-auction/internal/core/domain"
)

// CampaignRepository persists campaigns. It is an outbound port;
// implementations must be safe for concurrent use. Lookups return nil, nil
// when the campaign does not exist.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// UpdateCampaign stores the provider-editable fields of c only if the
	// stored campaign still has c.Status and c.Version, and reports whether
	// it did. It never touches status, counters or the resolver-owned
	// fields.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error)
	// TransitionStatus applies t only if the stored status is one of
	// t.From. It reports whether the transition happened. Leaving active
	// clears the resolver-owned fields.
	TransitionStatus(ctx context.Context, t StatusTransition) (bool, error)
	// ListActiveCampaigns returns active campaigns of the given ad type and
	// category, oldest first.
	ListActiveCampaigns(ctx context.Context, adType domain.AdType, category string) ([]domain.Campaign, error)
	// ListProviderCampaigns returns every campaign of a provider, oldest first.
	ListProviderCampaigns(ctx context.Context, providerID uuid.UUID) ([]domain.Campaign, error)
	// ApplyAssignments writes position and actual CPC for every assignment
	// atomically.
	ApplyAssignments(ctx context.Context, assignments []domain.Assignment) error
	// ClearAuctionState resets position and actual CPC of one campaign.
	ClearAuctionState(ctx context.Context, campaignID uuid.UUID) error
}

// StatusTransition describes a conditional lifecycle change.
type StatusTransition struct {
	CampaignID uuid.UUID
	From       []domain.CampaignStatus
	To         domain.CampaignStatus
	At         time.Time
	// PaymentMethodID is recorded on activation when not empty.
	PaymentMethodID string
	// Version, when set, additionally requires the stored version to match.
	Version *int64
}
