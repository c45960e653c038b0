package auction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/metrics"
	"promo-auction/internal/core/port"
	"promo-auction/internal/core/quality"
)

// Options configures a Resolver. Zero values select in-process locks,
// default pricing, no event publishing and slog.Default.
type Options struct {
	Pricing    Pricing
	ByLocation bool
	Locker     port.SegmentLocker
	Publisher  port.EventPublisher
	Logger     *slog.Logger
	Now        func() time.Time
}

// Resolver runs resolution passes. A pass reads the current members of a
// segment with their highest active bids, ranks them and writes back
// position and clearing price. Passes on the same segment are serialized;
// passes on different segments run concurrently.
type Resolver struct {
	campaigns port.CampaignRepository
	bids      port.BidRepository
	listings  port.ListingReader
	evaluator *quality.Evaluator

	pricing    Pricing
	byLocation bool
	locker     port.SegmentLocker
	publisher  port.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewResolver wires a Resolver.
func NewResolver(
	campaigns port.CampaignRepository,
	bids port.BidRepository,
	listings port.ListingReader,
	evaluator *quality.Evaluator,
	opts Options,
) *Resolver {
	r := &Resolver{
		campaigns:  campaigns,
		bids:       bids,
		listings:   listings,
		evaluator:  evaluator,
		pricing:    opts.Pricing,
		byLocation: opts.ByLocation,
		locker:     opts.Locker,
		publisher:  opts.Publisher,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if r.pricing.Increment.IsZero() {
		r.pricing.Increment = DefaultIncrement
	}
	if r.locker == nil {
		r.locker = NewLocks()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.evaluator == nil {
		r.evaluator = quality.NewEvaluator(nil, 0)
	}
	return r
}

// SegmentOf returns the segment c competes in.
func (r *Resolver) SegmentOf(c *domain.Campaign) domain.SegmentKey {
	return domain.SegmentOf(c, r.byLocation)
}

// Resolve runs a pass for key under the segment lock.
func (r *Resolver) Resolve(ctx context.Context, key domain.SegmentKey) (*domain.Resolution, error) {
	return r.WithSegment(ctx, key, nil)
}

// WithSegment runs mutate followed by a pass while holding the segment
// lock, so the pass observes the mutation and no other pass interleaves.
// A nil mutate runs the pass alone.
func (r *Resolver) WithSegment(ctx context.Context, key domain.SegmentKey, mutate func(ctx context.Context) error) (*domain.Resolution, error) {
	unlock, err := r.locker.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock segment %s: %w", key, err)
	}
	defer unlock()

	if mutate != nil {
		if err = mutate(ctx); err != nil {
			return nil, err
		}
	}
	return r.resolveLocked(ctx, key)
}

func (r *Resolver) resolveLocked(ctx context.Context, key domain.SegmentKey) (*domain.Resolution, error) {
	res := &domain.Resolution{Segment: key}

	members, err := r.members(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return res, nil
	}

	ids := make([]uuid.UUID, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	highest, err := r.bids.HighestActiveBids(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load bids for %s: %w", key, err)
	}

	bidding := members[:0]
	for _, c := range members {
		if _, ok := highest[c.ID]; ok {
			bidding = append(bidding, c)
		}
	}
	if len(bidding) == 0 {
		return res, nil
	}

	listings := r.loadListings(ctx, bidding)
	entrants := make([]Entrant, len(bidding))
	for i := range bidding {
		c := &bidding[i]
		bid := highest[c.ID]
		var listing *domain.Listing
		if l, ok := listings[c.ServiceID]; ok {
			listing = &l
		}
		score := r.evaluator.Score(quality.Input{
			Campaign: c,
			CTR:      metrics.CTR(c.Impressions, c.Clicks).InexactFloat64(),
			Listing:  listing,
		})
		entrants[i] = Entrant{
			CampaignID:   c.ID,
			BidID:        bid.ID,
			Bid:          bid.Amount,
			QualityScore: score,
			CreatedAt:    c.CreatedAt,
		}
	}

	res.Assignments = Rank(entrants, r.pricing)
	if err = r.campaigns.ApplyAssignments(ctx, res.Assignments); err != nil {
		return nil, fmt.Errorf("apply assignments for %s: %w", key, err)
	}

	r.logger.DebugContext(ctx, "segment resolved",
		slog.String("segment", key.String()),
		slog.Int("ranked", len(res.Assignments)),
	)
	r.publish(ctx, res)
	return res, nil
}

// members returns the active campaigns of key. Storage filters by ad type
// and category; location scoping happens here so the key stays the single
// definition of a segment.
func (r *Resolver) members(ctx context.Context, key domain.SegmentKey) ([]domain.Campaign, error) {
	if !key.AdType.AuctionEligible() {
		return nil, nil
	}
	all, err := r.campaigns.ListActiveCampaigns(ctx, key.AdType, key.Category)
	if err != nil {
		return nil, fmt.Errorf("load segment %s: %w", key, err)
	}
	out := all[:0]
	for i := range all {
		if all[i].Competes() && r.SegmentOf(&all[i]) == key {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// loadListings never fails a pass: missing listing data scores with
// defaults.
func (r *Resolver) loadListings(ctx context.Context, campaigns []domain.Campaign) map[uuid.UUID]domain.Listing {
	if r.listings == nil {
		return nil
	}
	ids := make([]uuid.UUID, len(campaigns))
	for i := range campaigns {
		ids[i] = campaigns[i].ServiceID
	}
	listings, err := r.listings.GetListings(ctx, ids)
	if err != nil {
		r.logger.WarnContext(ctx, "listing lookup failed, scoring with defaults", slog.Any("error", err))
		return nil
	}
	return listings
}

func (r *Resolver) publish(ctx context.Context, res *domain.Resolution) {
	if r.publisher == nil {
		return
	}
	ev := domain.SegmentResolved{
		EventID:     uuid.New(),
		Segment:     res.Segment.String(),
		AdType:      res.Segment.AdType,
		Category:    res.Segment.Category,
		Location:    res.Segment.Location,
		Assignments: res.Assignments,
		ResolvedAt:  r.now().UTC(),
	}
	if err := r.publisher.PublishSegmentResolved(ctx, ev); err != nil {
		r.logger.ErrorContext(ctx, "publish segment resolved",
			slog.String("segment", ev.Segment),
			slog.Any("error", err),
		)
	}
}
