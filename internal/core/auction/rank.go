// Package auction ranks competing campaigns and derives their clearing
// prices with a generalized second-price rule.
package auction

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-auction/internal/core/domain"
)

// DefaultIncrement is added to the next campaign's bid to form a clearing price.
var DefaultIncrement = decimal.New(1, -2)

// Entrant is one campaign taking part in a ranking.
type Entrant struct {
	CampaignID   uuid.UUID
	BidID        uuid.UUID
	Bid          decimal.Decimal
	QualityScore float64
	// CreatedAt is the campaign creation time, used to break ties.
	CreatedAt time.Time
}

// Pricing configures how clearing prices are derived.
type Pricing struct {
	Increment decimal.Decimal
	// CapAtOwnBid limits every price to the campaign's own bid. Without it a
	// campaign ranked above a higher bidder thanks to its quality score
	// pays more than it bid.
	CapAtOwnBid bool
}

// DefaultPricing charges the next bid plus one cent, uncapped.
func DefaultPricing() Pricing {
	return Pricing{Increment: DefaultIncrement}
}

type ranked struct {
	Entrant
	key decimal.Decimal
}

// Rank orders entrants by bid times quality score, highest first, and
// returns one assignment per entrant in position order. Ties go to the
// older campaign, then to the lower campaign id, so the result never
// depends on input order. The entrant at rank i pays the bid at rank i+1
// plus the increment; the last one pays its own bid. entrants is not
// modified.
func Rank(entrants []Entrant, p Pricing) []domain.Assignment {
	if len(entrants) == 0 {
		return nil
	}

	rows := make([]ranked, len(entrants))
	for i, e := range entrants {
		rows[i] = ranked{Entrant: e, key: RankingKey(e.Bid, e.QualityScore)}
	}

	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].key.Cmp(rows[j].key); c != 0 {
			return c > 0
		}
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		return bytes.Compare(rows[i].CampaignID[:], rows[j].CampaignID[:]) < 0
	})

	out := make([]domain.Assignment, len(rows))
	for i, r := range rows {
		price := r.Bid
		if i+1 < len(rows) {
			price = rows[i+1].Bid.Add(p.Increment)
		}
		if p.CapAtOwnBid && price.GreaterThan(r.Bid) {
			price = r.Bid
		}
		out[i] = domain.Assignment{
			CampaignID:   r.CampaignID,
			BidID:        r.BidID,
			Position:     i + 1,
			ActualCPC:    price,
			BidAmount:    r.Bid,
			QualityScore: r.QualityScore,
			RankingKey:   r.key,
		}
	}
	return out
}

// RankingKey is bid multiplied by quality score.
func RankingKey(bid decimal.Decimal, qualityScore float64) decimal.Decimal {
	return bid.Mul(decimal.NewFromFloat(qualityScore))
}
