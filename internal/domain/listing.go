package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a rentable property offered by a host. Prices are stored as
// integer cents so that price-per-night arithmetic stays exact.
type Listing struct {
	ID                 uuid.UUID
	HostID             uuid.UUID
	Title              string
	Description        string
	Location           string
	PricePerNightCents int64
	MaxGuests          int
	Bedrooms           int
	Bathrooms          int
	IsAvailable        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ListingSummary is the flattened row used for list views: no nested
// reviews, host reduced to a display name, rating pre-aggregated.
type ListingSummary struct {
	ListingID          uuid.UUID
	Title              string
	Location           string
	PricePerNightCents int64
	MaxGuests          int
	Bedrooms           int
	Bathrooms          int
	IsAvailable        bool
	HostName           string
	AverageRating      float64
}

// ListingDetail carries everything the detail view needs in one value.
type ListingDetail struct {
	Listing       Listing
	Host          User
	Reviews       []ReviewWithReviewer
	AverageRating float64
	ReviewCount   int
}
