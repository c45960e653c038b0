package configs

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Auction holds the pricing and lifecycle constants. Decimal fields are
// parsed through their TextUnmarshaler.
type Auction struct {
	// BidIncrement is added to the next bid to form the clearing price.
	BidIncrement decimal.Decimal `env:"BID_INCREMENT" envDefault:"0.01"`
	// CapAtOwnBid limits every clearing price to the campaign's own bid.
	CapAtOwnBid bool `env:"CAP_AT_OWN_BID" envDefault:"false"`
	// SegmentByLocation splits segments by targeting location.
	SegmentByLocation bool `env:"SEGMENT_BY_LOCATION" envDefault:"false"`
	// ConversionValue is the revenue assumed per conversion for ROI.
	ConversionValue decimal.Decimal `env:"CONVERSION_VALUE" envDefault:"50"`
	// MinDescriptionLength is the listing description length that earns
	// the description completeness bonus.
	MinDescriptionLength int `env:"MIN_DESCRIPTION_LENGTH" envDefault:"100"`
	// QuickBoostBudget is the fixed budget of a quick boost.
	QuickBoostBudget decimal.Decimal `env:"QUICK_BOOST_BUDGET" envDefault:"5.00"`
	// MaxQuickBoostHours caps the duration of a quick boost.
	MaxQuickBoostHours int `env:"MAX_QUICK_BOOST_HOURS" envDefault:"168"`
}

// Validate rejects values that would break pricing.
func (c Auction) Validate() error {
	if !c.BidIncrement.IsPositive() {
		return fmt.Errorf("AUCTION_BID_INCREMENT must be positive, got %s", c.BidIncrement)
	}
	if c.ConversionValue.IsNegative() {
		return fmt.Errorf("AUCTION_CONVERSION_VALUE must not be negative, got %s", c.ConversionValue)
	}
	if c.MaxQuickBoostHours < 1 {
		return fmt.Errorf("AUCTION_MAX_QUICK_BOOST_HOURS must be at least 1, got %d", c.MaxQuickBoostHours)
	}
	return nil
}
