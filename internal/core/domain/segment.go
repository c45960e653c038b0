package domain

import (
	"net/url"
	"strings"
)

// SegmentKey identifies a set of campaigns that compete with each other.
// It is comparable and used as the unit of locking and resolution.
type SegmentKey struct {
	AdType   AdType
	Category string
	// Location is empty unless segmentation by location is enabled.
	Location string
}

// SegmentOf builds the key for c. When byLocation is false the location is
// ignored and all locations of a category compete together.
func SegmentOf(c *Campaign, byLocation bool) SegmentKey {
	t := c.Targeting.Normalize()
	key := SegmentKey{AdType: c.AdType, Category: t.Category}
	if byLocation {
		key.Location = t.Location
	}
	return key
}

// String renders the key as "adType/category[/location]". Each part is
// path-escaped, so a "/" inside a category or location cannot make two
// different keys render the same.
func (k SegmentKey) String() string {
	parts := []string{url.PathEscape(string(k.AdType)), url.PathEscape(k.Category)}
	if k.Location != "" {
		parts = append(parts, url.PathEscape(k.Location))
	}
	return strings.Join(parts, "/")
}

// Resolution is the committed outcome of one resolution pass. Assignments
// are ordered by position.
type Resolution struct {
	Segment     SegmentKey
	Assignments []Assignment
}
