package port

import (
	"context"

	"github.com/google/uuid"

	"promo-auction/internal/core/domain"
)

// BidRepository is the bid ledger. Bids are append-only apart from
// withdrawal.
type BidRepository interface {
	// CreateBid appends a bid.
	CreateBid(ctx context.Context, b *domain.Bid) error
	// GetBid returns a bid by id, or nil, nil.
	GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
	// WithdrawBid marks an active bid withdrawn and reports whether it was
	// active.
	WithdrawBid(ctx context.Context, id uuid.UUID) (bool, error)
	// HighestActiveBids returns, per campaign, the active bid with the
	// greatest amount (earliest on ties). Campaigns without active bids are
	// absent from the result.
	HighestActiveBids(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]domain.Bid, error)
}
