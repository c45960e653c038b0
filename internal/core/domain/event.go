package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assignment is the outcome of a resolution pass for one campaign.
type Assignment struct {
	CampaignID   uuid.UUID       `json:"campaign_id"`
	BidID        uuid.UUID       `json:"bid_id"`
	Position     int             `json:"position"`
	ActualCPC    decimal.Decimal `json:"actual_cpc"`
	BidAmount    decimal.Decimal `json:"bid_amount"`
	QualityScore float64         `json:"quality_score"`
	RankingKey   decimal.Decimal `json:"ranking_key"`
}

// SegmentResolved is emitted after a resolution pass has been committed.
type SegmentResolved struct {
	EventID     uuid.UUID    `json:"event_id"`
	Segment     string       `json:"segment"`
	AdType      AdType       `json:"ad_type"`
	Category    string       `json:"category"`
	Location    string       `json:"location,omitempty"`
	Assignments []Assignment `json:"assignments"`
	ResolvedAt  time.Time    `json:"resolved_at"`
}
