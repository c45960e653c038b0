package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidStatus string

const (
	BidActive    BidStatus = "active"
	BidWithdrawn BidStatus = "withdrawn"
)

// Bid is one offer attached to a campaign. Bids are append-only; the only
// change after creation is withdrawal.
type Bid struct {
	ID             uuid.UUID
	CampaignID     uuid.UUID
	Amount         decimal.Decimal
	TargetPosition int // advisory
	AutoBid        bool
	MaxBid         decimal.Decimal
	Status         BidStatus
	CreatedAt      time.Time
}

// Higher reports whether b ranks above other when choosing a campaign's
// effective bid: greater amount first, then the earlier bid.
func (b *Bid) Higher(other *Bid) bool {
	if c := b.Amount.Cmp(other.Amount); c != 0 {
		return c > 0
	}
	return b.CreatedAt.Before(other.CreatedAt)
}
