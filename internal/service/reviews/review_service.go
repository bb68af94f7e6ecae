package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/google/uuid"
)

type ReviewUseCase interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.ReviewWithReviewer, error)
}

type CreateReviewInput struct {
	ListingID  uuid.UUID
	ReviewerID uuid.UUID
	Rating     int
	Comment    string
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
	now      func() time.Time
	newID    func() uuid.UUID
}

type ReviewServiceOption func(*ReviewService)

func WithClock(now func() time.Time) ReviewServiceOption {
	return func(s *ReviewService) {
		s.now = now
	}
}

func WithIDSource(newID func() uuid.UUID) ReviewServiceOption {
	return func(s *ReviewService) {
		s.newID = newID
	}
}

func NewReviewService(reviews repository.ReviewRepository, listings repository.ListingRepository, opts ...ReviewServiceOption) *ReviewService {
	service := &ReviewService{
		reviews:  reviews,
		listings: listings,
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateReview validates and persists a review. A reviewer gets one
// review per listing; the repository's uniqueness query backs the check.
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if _, err := s.listings.GetByID(ctx, input.ListingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(domain.CodeListingNotFound, "listing_id", "invalid listing ID")
		}
		return nil, fmt.Errorf("resolve listing: %w", err)
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.NewValidationError(domain.CodeInvalidRating, "rating", "rating must be between 1 and 5")
	}

	exists, err := s.reviews.ExistsByListingAndReviewer(ctx, input.ListingID, input.ReviewerID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, domain.NewValidationError(domain.CodeDuplicateReview, "reviewer_id", "reviewer has already reviewed this listing")
	}

	review := &domain.Review{
		ID:         s.newID(),
		ListingID:  input.ListingID,
		ReviewerID: input.ReviewerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  s.now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.ReviewWithReviewer, error) {
	return s.reviews.ListByListing(ctx, listingID)
}

var _ ReviewUseCase = (*ReviewService)(nil)
