package listings

import (
	"context"
	"fmt"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/google/uuid"
)

type ListingUseCase interface {
	CreateListing(ctx context.Context, input ListingInput) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id uuid.UUID, input ListingInput) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.ListingDetail, error)
	ListSummaries(ctx context.Context) ([]domain.ListingSummary, error)
}

type Cache interface {
	GetListings(ctx context.Context) ([]domain.ListingSummary, error)
	SetListings(ctx context.Context, summaries []domain.ListingSummary) error
	InvalidateListings(ctx context.Context) error
}

type ListingInput struct {
	HostID             uuid.UUID
	Title              string
	Description        string
	Location           string
	PricePerNightCents int64
	MaxGuests          int
	Bedrooms           int
	Bathrooms          int
	IsAvailable        bool
}

type ListingService struct {
	listings repository.ListingRepository
	users    repository.UserRepository
	reviews  repository.ReviewRepository
	cache    Cache
	newID    func() uuid.UUID
}

type ListingServiceOption func(*ListingService)

func WithIDSource(newID func() uuid.UUID) ListingServiceOption {
	return func(s *ListingService) {
		s.newID = newID
	}
}

func NewListingService(
	listings repository.ListingRepository,
	users repository.UserRepository,
	reviews repository.ReviewRepository,
	cache Cache,
	opts ...ListingServiceOption,
) *ListingService {
	service := &ListingService{
		listings: listings,
		users:    users,
		reviews:  reviews,
		cache:    cache,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func validateInput(input ListingInput) error {
	if input.PricePerNightCents <= 0 {
		return domain.NewValidationError(domain.CodeInvalidPrice, "price_per_night", "price per night must be positive")
	}
	if input.MaxGuests < 1 {
		return domain.NewValidationError(domain.CodeCapacityExceeded, "max_guests", "max guests must be at least 1")
	}
	return nil
}

func (s *ListingService) CreateListing(ctx context.Context, input ListingInput) (*domain.Listing, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, input.HostID); err != nil {
		return nil, fmt.Errorf("resolve host: %w", err)
	}

	listing := &domain.Listing{
		ID:                 s.newID(),
		HostID:             input.HostID,
		Title:              input.Title,
		Description:        input.Description,
		Location:           input.Location,
		PricePerNightCents: input.PricePerNightCents,
		MaxGuests:          input.MaxGuests,
		Bedrooms:           input.Bedrooms,
		Bathrooms:          input.Bathrooms,
		IsAvailable:        input.IsAvailable,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	s.invalidate(ctx)
	return listing, nil
}

func (s *ListingService) UpdateListing(ctx context.Context, id uuid.UUID, input ListingInput) (*domain.Listing, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Location = input.Location
	listing.PricePerNightCents = input.PricePerNightCents
	listing.MaxGuests = input.MaxGuests
	listing.Bedrooms = input.Bedrooms
	listing.Bathrooms = input.Bathrooms
	listing.IsAvailable = input.IsAvailable

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	s.invalidate(ctx)
	return listing, nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ListingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

// GetDetail assembles the full nested view: listing, host, reviews with
// reviewers and the aggregated rating.
func (s *ListingService) GetDetail(ctx context.Context, id uuid.UUID) (*domain.ListingDetail, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	host, err := s.users.GetByID(ctx, listing.HostID)
	if err != nil {
		return nil, fmt.Errorf("load host: %w", err)
	}
	reviews, err := s.reviews.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	avg, count, err := s.listings.RatingStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load rating stats: %w", err)
	}

	return &domain.ListingDetail{
		Listing:       *listing,
		Host:          *host,
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

func (s *ListingService) ListSummaries(ctx context.Context) ([]domain.ListingSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetListings(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	summaries, err := s.listings.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetListings(ctx, summaries)
	}
	return summaries, nil
}

func (s *ListingService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateListings(ctx)
	}
}

var _ ListingUseCase = (*ListingService)(nil)
