// Package quality scores how well a campaign's listing is expected to
// perform. The score multiplies the bid when ranking campaigns.
package quality

import (
	"promo-auction/internal/core/domain"
)

const (
	MinScore = 0.1
	MaxScore = 10.0

	// DefaultRating is assumed for listings without reviews.
	DefaultRating = 3.0
	maxRating     = 5.0

	ctrWeight = 4.0

	// completeness is counted in tenths to keep the sum exact
	baseCompleteness  = 5
	imageCompleteness = 2
	descCompleteness  = 2
	tagCompleteness   = 1
	fullCompleteness  = 10

	DefaultMinDescLength = 100
)

// RelevanceModel estimates how relevant a campaign is to its segment. It
// returns a multiplier, 1.0 meaning neutral.
type RelevanceModel interface {
	Relevance(c *domain.Campaign, l *domain.Listing) float64
}

// ConstantRelevance returns the same factor for every campaign.
type ConstantRelevance float64

func (r ConstantRelevance) Relevance(*domain.Campaign, *domain.Listing) float64 {
	return float64(r)
}

// Input is everything the evaluator needs for one campaign. Listing may be
// nil when the listing service has no record.
type Input struct {
	Campaign *domain.Campaign
	CTR      float64
	Listing  *domain.Listing
}

// Breakdown exposes the individual factors of a score.
type Breakdown struct {
	CTR          float64 `json:"ctr_factor"`
	Rating       float64 `json:"rating_factor"`
	Completeness float64 `json:"completeness_factor"`
	Relevance    float64 `json:"relevance_factor"`
	Score        float64 `json:"score"`
}

// Evaluator computes quality scores. It holds no per-campaign state.
type Evaluator struct {
	relevance     RelevanceModel
	minDescLength int
}

// NewEvaluator returns an Evaluator. A nil relevance model means constant 1.0;
// minDescLength <= 0 means DefaultMinDescLength.
func NewEvaluator(relevance RelevanceModel, minDescLength int) *Evaluator {
	if relevance == nil {
		relevance = ConstantRelevance(1.0)
	}
	if minDescLength <= 0 {
		minDescLength = DefaultMinDescLength
	}
	return &Evaluator{relevance: relevance, minDescLength: minDescLength}
}

// Score returns the clamped quality score for in.
func (e *Evaluator) Score(in Input) float64 {
	return e.Evaluate(in).Score
}

// Evaluate returns the score together with its factors.
func (e *Evaluator) Evaluate(in Input) Breakdown {
	b := Breakdown{
		CTR:          1 + max(in.CTR, 0)*ctrWeight,
		Rating:       ratingFactor(in.Listing),
		Completeness: e.completeness(in.Listing),
		Relevance:    e.relevance.Relevance(in.Campaign, in.Listing),
	}
	b.Score = clamp(b.CTR*b.Rating*b.Completeness*b.Relevance, MinScore, MaxScore)
	return b
}

func ratingFactor(l *domain.Listing) float64 {
	rating := DefaultRating
	if l != nil && l.Rating != nil {
		rating = clamp(*l.Rating, 0, maxRating)
	}
	return rating / maxRating
}

func (e *Evaluator) completeness(l *domain.Listing) float64 {
	score := baseCompleteness
	if l == nil {
		return float64(score) / fullCompleteness
	}
	if l.ImageCount > 0 {
		score += imageCompleteness
	}
	if l.DescriptionLength > e.minDescLength {
		score += descCompleteness
	}
	if l.TagCount > 0 {
		score += tagCompleteness
	}
	return float64(min(score, fullCompleteness)) / fullCompleteness
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
