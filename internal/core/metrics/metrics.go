// Package metrics derives campaign KPIs from raw counters. All functions are
// pure; a zero denominator yields zero rather than an error.
package metrics

import (
	"github.com/shopspring/decimal"
)

const (
	// RatePrecision is the number of decimal places kept for ratios.
	RatePrecision int32 = 4
	// MoneyPrecision is the number of decimal places kept for currency.
	MoneyPrecision int32 = 2
)

// Input holds the raw counters of one campaign or an aggregate of several.
type Input struct {
	Impressions int64
	Clicks      int64
	Leads       int64
	Conversions int64
	Spent       decimal.Decimal
}

// Add returns the element-wise sum of in and other.
func (in Input) Add(other Input) Input {
	return Input{
		Impressions: in.Impressions + other.Impressions,
		Clicks:      in.Clicks + other.Clicks,
		Leads:       in.Leads + other.Leads,
		Conversions: in.Conversions + other.Conversions,
		Spent:       in.Spent.Add(other.Spent),
	}
}

// Metrics are the derived rates. Rates are rounded to RatePrecision and
// currency amounts to MoneyPrecision.
type Metrics struct {
	CTR            decimal.Decimal `json:"ctr"`
	CPC            decimal.Decimal `json:"cpc"`
	CPL            decimal.Decimal `json:"cpl"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	ROI            decimal.Decimal `json:"roi"`
}

// Calculator computes Metrics. ConversionValue is the revenue assumed for a
// single conversion when computing ROI.
type Calculator struct {
	ConversionValue decimal.Decimal
}

// NewCalculator returns a Calculator using conversionValue for ROI.
func NewCalculator(conversionValue decimal.Decimal) Calculator {
	return Calculator{ConversionValue: conversionValue}
}

// Compute derives every metric from in.
func (c Calculator) Compute(in Input) Metrics {
	return Metrics{
		CTR:            CTR(in.Impressions, in.Clicks),
		CPC:            CPC(in.Spent, in.Clicks),
		CPL:            CPL(in.Spent, in.Leads),
		ConversionRate: ConversionRate(in.Clicks, in.Conversions),
		ROI:            ROI(in.Conversions, in.Spent, c.ConversionValue),
	}
}

// CTR is clicks per impression.
func CTR(impressions, clicks int64) decimal.Decimal {
	return ratio(decimal.NewFromInt(clicks), impressions, RatePrecision)
}

// CPC is spend per click.
func CPC(spent decimal.Decimal, clicks int64) decimal.Decimal {
	return ratio(spent, clicks, MoneyPrecision)
}

// CPL is spend per lead.
func CPL(spent decimal.Decimal, leads int64) decimal.Decimal {
	return ratio(spent, leads, MoneyPrecision)
}

// ConversionRate is conversions per click.
func ConversionRate(clicks, conversions int64) decimal.Decimal {
	return ratio(decimal.NewFromInt(conversions), clicks, RatePrecision)
}

// ROI is (conversions*value - spent) / spent.
func ROI(conversions int64, spent, valuePerConversion decimal.Decimal) decimal.Decimal {
	if !spent.IsPositive() {
		return decimal.Zero
	}
	revenue := valuePerConversion.Mul(decimal.NewFromInt(conversions))
	return revenue.Sub(spent).DivRound(spent, RatePrecision)
}

func ratio(num decimal.Decimal, den int64, places int32) decimal.Decimal {
	if den <= 0 {
		return decimal.Zero
	}
	return num.DivRound(decimal.NewFromInt(den), places)
}
