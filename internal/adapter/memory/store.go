// Package memory implements the storage ports in process memory. It backs
// the use case tests and the "memory" storage mode for local runs.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"promo-auction/internal/core/domain"
	"promo-auction/internal/core/metrics"
	"promo-auction/internal/core/port"
)

var (
	_ port.CampaignRepository = (*Store)(nil)
	_ port.BidRepository      = (*Store)(nil)
	_ port.ListingReader      = (*Store)(nil)
)

// Store keeps campaigns, bids and listings behind a single RWMutex. Values
// are copied on the way in and out so callers never share memory with it.
type Store struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]domain.Campaign
	bids      map[uuid.UUID]domain.Bid
	bidOrder  map[uuid.UUID][]uuid.UUID // campaign id -> bid ids in insertion order
	listings  map[uuid.UUID]domain.Listing
}

func NewStore() *Store {
	return &Store{
		campaigns: map[uuid.UUID]domain.Campaign{},
		bids:      map[uuid.UUID]domain.Bid{},
		bidOrder:  map[uuid.UUID][]uuid.UUID{},
		listings:  map[uuid.UUID]domain.Listing{},
	}
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = clone(*c)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	out := clone(c)
	return &out, nil
}

func (s *Store) UpdateCampaign(_ context.Context, c *domain.Campaign) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.campaigns[c.ID]
	if !ok || cur.Status != c.Status || cur.Version != c.Version {
		return false, nil
	}
	cur.Name = c.Name
	cur.AdType = c.AdType
	cur.BudgetType = c.BudgetType
	cur.Budget = c.Budget
	cur.StartDate = c.StartDate
	cur.EndDate = c.EndDate
	cur.Targeting = c.Targeting
	cur.Creative = c.Creative
	cur.UpdatedAt = c.UpdatedAt
	cur.Version++
	s.campaigns[c.ID] = cur
	return true, nil
}

func (s *Store) TransitionStatus(_ context.Context, t port.StatusTransition) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[t.CampaignID]
	if !ok || !slices.Contains(t.From, c.Status) {
		return false, nil
	}
	if t.Version != nil && *t.Version != c.Version {
		return false, nil
	}
	c.Status = t.To
	c.Version++
	c.UpdatedAt = t.At
	if t.To == domain.StatusActive {
		if t.PaymentMethodID != "" {
			c.PaymentMethodID = t.PaymentMethodID
		}
		if c.ActivatedAt == nil {
			at := t.At
			c.ActivatedAt = &at
		}
	} else {
		c.ClearAuctionState()
	}
	s.campaigns[t.CampaignID] = c
	return true, nil
}

func (s *Store) ListActiveCampaigns(_ context.Context, adType domain.AdType, category string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.Status == domain.StatusActive && c.AdType == adType &&
			strings.EqualFold(strings.TrimSpace(c.Targeting.Category), category) {
			out = append(out, clone(c))
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *Store) ListProviderCampaigns(_ context.Context, providerID uuid.UUID) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if c.ProviderID == providerID {
			out = append(out, clone(c))
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *Store) ApplyAssignments(_ context.Context, assignments []domain.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range assignments {
		c, ok := s.campaigns[a.CampaignID]
		if !ok {
			continue
		}
		pos, cpc := a.Position, a.ActualCPC
		c.CurrentPosition = &pos
		c.ActualCPC = &cpc
		s.campaigns[a.CampaignID] = c
	}
	return nil
}

func (s *Store) ClearAuctionState(_ context.Context, campaignID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.campaigns[campaignID]; ok {
		c.ClearAuctionState()
		s.campaigns[campaignID] = c
	}
	return nil
}

func (s *Store) CreateBid(_ context.Context, b *domain.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[b.ID] = *b
	s.bidOrder[b.CampaignID] = append(s.bidOrder[b.CampaignID], b.ID)
	return nil
}

func (s *Store) GetBid(_ context.Context, id uuid.UUID) (*domain.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bids[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) WithdrawBid(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bids[id]
	if !ok || b.Status != domain.BidActive {
		return false, nil
	}
	b.Status = domain.BidWithdrawn
	s.bids[id] = b
	return true, nil
}

func (s *Store) HighestActiveBids(_ context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]domain.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]domain.Bid, len(campaignIDs))
	for _, cid := range campaignIDs {
		var best *domain.Bid
		for _, bid := range s.bidOrder[cid] {
			b := s.bids[bid]
			if b.Status != domain.BidActive {
				continue
			}
			if best == nil || b.Higher(best) {
				best = &b
			}
		}
		if best != nil {
			out[cid] = *best
		}
	}
	return out, nil
}

func (s *Store) GetListings(_ context.Context, serviceIDs []uuid.UUID) (map[uuid.UUID]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]domain.Listing, len(serviceIDs))
	for _, id := range serviceIDs {
		if l, ok := s.listings[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

// PutListing stores listing signals, standing in for the listing service.
func (s *Store) PutListing(l domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ServiceID] = l
}

// RecordTraffic adds counters and spend to a campaign, standing in for the
// tracking pipeline.
func (s *Store) RecordTraffic(campaignID uuid.UUID, in metrics.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok {
		return
	}
	c.Impressions += in.Impressions
	c.Clicks += in.Clicks
	c.Leads += in.Leads
	c.Conversions += in.Conversions
	c.Spent = c.Spent.Add(in.Spent)
	c.UpdatedAt = time.Now().UTC()
	s.campaigns[campaignID] = c
}

func sortByCreation(cs []domain.Campaign) {
	sort.Slice(cs, func(i, j int) bool {
		if !cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].CreatedAt.Before(cs[j].CreatedAt)
		}
		return cs[i].ID.String() < cs[j].ID.String()
	})
}

// clone copies the pointer fields so stored values are never aliased.
func clone(c domain.Campaign) domain.Campaign {
	if c.CurrentPosition != nil {
		p := *c.CurrentPosition
		c.CurrentPosition = &p
	}
	if c.ActualCPC != nil {
		v := *c.ActualCPC
		c.ActualCPC = &v
	}
	if c.ActivatedAt != nil {
		at := *c.ActivatedAt
		c.ActivatedAt = &at
	}
	return c
}
