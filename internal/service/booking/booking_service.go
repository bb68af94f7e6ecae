package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/kafka"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBookingDetail(ctx context.Context, id uuid.UUID) (*BookingDetail, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.BookingSummary, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.BookingSummary, error)
	CompleteFinishedBookings(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// ListingDetailProvider assembles the nested listing view used by the
// booking detail shape.
type ListingDetailProvider interface {
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.ListingDetail, error)
}

// CreateBookingInput is a candidate booking. TotalPriceCents is a pointer
// so an explicitly supplied zero is distinguishable from an absent price:
// absent means auto-calculate, supplied non-positive is rejected.
type CreateBookingInput struct {
	ListingID       uuid.UUID
	GuestID         uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	TotalPriceCents *int64
}

// BookingDetail pairs a booking with its nested listing and guest.
type BookingDetail struct {
	Booking domain.Booking
	Listing domain.ListingDetail
	Guest   domain.User
}

type BookingService struct {
	bookings     repository.BookingRepository
	listings     repository.ListingRepository
	users        repository.UserRepository
	details      ListingDetailProvider
	producer     Producer
	bookingTopic string
	now          func() time.Time
	newID        func() uuid.UUID
}

type BookingServiceOption func(*BookingService)

// WithClock fixes the validator's notion of "today" for tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithIDSource(newID func() uuid.UUID) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	listings repository.ListingRepository,
	users repository.UserRepository,
	details ListingDetailProvider,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		listings:     listings,
		users:        users,
		details:      details,
		producer:     producer,
		bookingTopic: bookingTopic,
		now:          time.Now,
		newID:        uuid.New,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates a candidate booking and persists it with status
// pending. Checks run in one canonical order: listing resolution,
// availability, capacity, check-in not past, check-out after check-in,
// price. The validator itself has no side effects beyond persistence.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	listing, err := s.listings.GetByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(domain.CodeListingNotFound, "listing_id", "invalid listing ID")
		}
		return nil, fmt.Errorf("resolve listing: %w", err)
	}

	if !listing.IsAvailable {
		return nil, domain.NewValidationError(domain.CodeListingUnavailable, "listing_id", "this listing is not available for booking")
	}

	if input.NumGuests < 1 || input.NumGuests > listing.MaxGuests {
		return nil, domain.NewValidationError(domain.CodeCapacityExceeded, "num_guests",
			fmt.Sprintf("number of guests must be between 1 and %d", listing.MaxGuests))
	}

	checkIn := domain.DateOnly(input.CheckIn)
	checkOut := domain.DateOnly(input.CheckOut)
	today := domain.DateOnly(s.now())

	if checkIn.Before(today) {
		return nil, domain.NewValidationError(domain.CodePastCheckIn, "check_in_date", "check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, domain.NewValidationError(domain.CodeInvalidRange, "check_out_date", "check-out date must be after check-in date")
	}

	days := int64(checkOut.Sub(checkIn).Hours() / 24)
	var total int64
	if input.TotalPriceCents == nil {
		total = listing.PricePerNightCents * days
	} else {
		if *input.TotalPriceCents <= 0 {
			return nil, domain.NewValidationError(domain.CodeInvalidPrice, "total_price", "total price must be positive")
		}
		total = *input.TotalPriceCents
	}

	booking := &domain.Booking{
		ID:              s.newID(),
		ListingID:       listing.ID,
		GuestID:         input.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumGuests:       input.NumGuests,
		TotalPriceCents: total,
		Status:          domain.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) GetBookingDetail(ctx context.Context, id uuid.UUID) (*BookingDetail, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	listing, err := s.details.GetDetail(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("load listing detail: %w", err)
	}
	guest, err := s.users.GetByID(ctx, booking.GuestID)
	if err != nil {
		return nil, fmt.Errorf("load guest: %w", err)
	}
	return &BookingDetail{Booking: *booking, Listing: *listing, Guest: *guest}, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, errors.New("booking is not pending")
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated)
	return updated, nil
}

// CancelBooking is idempotent: canceling an already canceled or completed
// booking returns it unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCanceled || current.Status == domain.BookingStatusCompleted {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCanceled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_canceled", updated)
	return updated, nil
}

func (s *BookingService) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.BookingSummary, error) {
	return s.bookings.ListByListing(ctx, listingID)
}

func (s *BookingService) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.BookingSummary, error) {
	return s.bookings.ListByGuest(ctx, guestID)
}

// CompleteFinishedBookings marks confirmed bookings with a past check-out
// as completed. Called by the worker sweep.
func (s *BookingService) CompleteFinishedBookings(ctx context.Context) ([]domain.Booking, error) {
	completed, err := s.bookings.CompleteFinishedBefore(ctx, domain.DateOnly(s.now()))
	if err != nil {
		return nil, err
	}
	for _, b := range completed {
		s.publish(ctx, "booking_completed", &b)
	}
	return completed, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID.String(),
		ListingID:  booking.ListingID.String(),
		GuestID:    booking.GuestID.String(),
		CheckIn:    booking.CheckIn.Format("2006-01-02"),
		CheckOut:   booking.CheckOut.Format("2006-01-02"),
		NumGuests:  booking.NumGuests,
		TotalCents: booking.TotalPriceCents,
		Status:     string(booking.Status),
		OccurredAt: s.now(),
	}
	if guest, err := s.users.GetByID(ctx, booking.GuestID); err == nil {
		event.GuestEmail = guest.Email
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.BookingID, event); err != nil {
		log.Warn().Err(err).Str("booking_id", event.BookingID).Str("event", eventType).
			Msg("failed to publish booking event")
	}
}

var _ BookingUseCase = (*BookingService)(nil)
