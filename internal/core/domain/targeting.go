package domain

import "strings"

// Targeting describes where a campaign should be shown. Category is
// required for auction-eligible ad types; Location is optional.
type Targeting struct {
	Category string `json:"category"`
	Location string `json:"location,omitempty"`
}

// Normalize lowercases and trims both fields so that segment keys built
// from different inputs compare equal.
func (t Targeting) Normalize() Targeting {
	return Targeting{
		Category: strings.ToLower(strings.TrimSpace(t.Category)),
		Location: strings.ToLower(strings.TrimSpace(t.Location)),
	}
}
