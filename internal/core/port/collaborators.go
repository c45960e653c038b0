package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
)

// PaymentValidator checks that a provider's payment method can cover an
// amount. It is called only on activation.
type PaymentValidator interface {
	ValidatePaymentMethod(ctx context.Context, providerID uuid.UUID, paymentMethodID string, amount decimal.Decimal) (bool, error)
}

// ListingReader reads quality signals from the service listing store.
// Services without a listing are absent from the result.
type ListingReader interface {
	GetListings(ctx context.Context, serviceIDs []uuid.UUID) (map[uuid.UUID]domain.Listing, error)
}

// EventPublisher announces committed resolution passes.
type EventPublisher interface {
	PublishSegmentResolved(ctx context.Context, ev domain.SegmentResolved) error
}

// SegmentLocker provides mutual exclusion per segment. The returned
// function releases the lock and is safe to call more than once.
type SegmentLocker interface {
	Lock(ctx context.Context, key domain.SegmentKey) (func(), error)
}

// AuctionResolver ranks the campaigns of a segment.
type AuctionResolver interface {
	// SegmentOf returns the segment a campaign competes in.
	SegmentOf(c *domain.Campaign) domain.SegmentKey
	// Resolve runs a resolution pass for key.
	Resolve(ctx context.Context, key domain.SegmentKey) (*domain.Resolution, error)
	// WithSegment runs mutate and then a resolution pass inside the
	// segment's critical section. When mutate fails no pass is run.
	WithSegment(ctx context.Context, key domain.SegmentKey, mutate func(ctx context.Context) error) (*domain.Resolution, error)
}
