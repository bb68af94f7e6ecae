package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a guest's rating and comment for a listing. A reviewer may
// leave at most one review per listing; the pair is unique.
type Review struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

type ReviewWithReviewer struct {
	Review   Review
	Reviewer User
}
