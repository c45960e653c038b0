package domain

import "github.com/google/uuid"

// Listing carries the service listing signals used for quality scoring.
// It is owned by the listing service; the engine reads it.
type Listing struct {
	ServiceID         uuid.UUID
	Rating            *float64 // 0-5, nil when the service has no reviews
	ImageCount        int
	DescriptionLength int
	TagCount          int
}
