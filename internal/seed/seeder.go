// Package seed fills the database with self-consistent sample data for
// development and testing. All listing, booking and review creation is
// routed through the real validators, so a slice of the generated
// bookings is deliberately rejected (past check-in dates) to exercise
// those paths. Item failures are logged and skipped; one bad record
// never aborts the batch.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxReviewAttempts = 10

type Counts struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

type Result struct {
	Users           []domain.User
	Listings        []domain.Listing
	Bookings        []domain.Booking
	Reviews         []domain.Review
	SkippedBookings int
	SkippedReviews  int
}

type Seeder struct {
	users       repository.UserRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	listingSvc  listings.ListingUseCase
	bookingSvc  booking.BookingUseCase
	reviewSvc   reviews.ReviewUseCase
	rng         *rand.Rand
	now         func() time.Time
	log         zerolog.Logger
}

// NewSeeder takes an explicit rand source so generation is reproducible
// under a fixed seed.
func NewSeeder(
	users repository.UserRepository,
	listingRepo repository.ListingRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	listingSvc listings.ListingUseCase,
	bookingSvc booking.BookingUseCase,
	reviewSvc reviews.ReviewUseCase,
	rng *rand.Rand,
	now func() time.Time,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:       users,
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		listingSvc:  listingSvc,
		bookingSvc:  bookingSvc,
		reviewSvc:   reviewSvc,
		rng:         rng,
		now:         now,
		log:         log,
	}
}

var userData = [][4]string{
	{"john_doe", "John", "Doe", "john@example.com"},
	{"jane_smith", "Jane", "Smith", "jane@example.com"},
	{"mike_wilson", "Mike", "Wilson", "mike@example.com"},
	{"sarah_johnson", "Sarah", "Johnson", "sarah@example.com"},
	{"david_brown", "David", "Brown", "david@example.com"},
	{"lisa_davis", "Lisa", "Davis", "lisa@example.com"},
	{"tom_miller", "Tom", "Miller", "tom@example.com"},
	{"anna_garcia", "Anna", "Garcia", "anna@example.com"},
	{"chris_martinez", "Chris", "Martinez", "chris@example.com"},
	{"emily_taylor", "Emily", "Taylor", "emily@example.com"},
}

type listingTemplate struct {
	title       string
	description string
	location    string
	priceCents  int64
	maxGuests   int
	bedrooms    int
	bathrooms   int
}

var listingTemplates = []listingTemplate{
	{"Cozy Downtown Apartment", "A beautiful apartment in the heart of the city with modern amenities.", "New York, NY", 12000, 2, 1, 1},
	{"Luxury Beach House", "Stunning beachfront property with panoramic ocean views.", "Miami, FL", 25000, 8, 4, 3},
	{"Mountain Cabin Retreat", "Peaceful cabin surrounded by nature, perfect for a getaway.", "Aspen, CO", 18000, 6, 3, 2},
	{"Historic City Loft", "Charming loft in a historic building with exposed brick walls.", "Boston, MA", 9500, 4, 2, 1},
	{"Modern Studio in Tech Hub", "Sleek studio apartment perfect for business travelers.", "San Francisco, CA", 15000, 2, 1, 1},
}

var additionalLocations = []string{
	"Chicago, IL", "Seattle, WA", "Austin, TX", "Portland, OR",
	"Nashville, TN", "Denver, CO", "Atlanta, GA", "Philadelphia, PA",
}

var reviewComments = []string{
	"Great place to stay! Very clean and comfortable.",
	"Amazing location and the host was very responsive.",
	"Perfect for our family vacation. Highly recommended!",
	"The property was exactly as described. Will book again!",
	"Good value for money. Minor issues but overall satisfied.",
	"Exceptional service and beautiful property.",
	"Could use some updates but the location is unbeatable.",
	"Host went above and beyond to make our stay perfect.",
	"Clean, comfortable, and great amenities.",
	"Would definitely stay here again on our next visit.",
}

// Clear drops previously seeded data, children before parents.
func (s *Seeder) Clear(ctx context.Context) error {
	if err := s.reviewRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}
	if err := s.bookingRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	if err := s.listingRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear listings: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

func (s *Seeder) Run(ctx context.Context, counts Counts) (*Result, error) {
	result := &Result{}

	users, err := s.createUsers(ctx, counts.Users)
	if err != nil {
		return nil, err
	}
	result.Users = users

	listingRows, err := s.createListings(ctx, users, counts.Listings)
	if err != nil {
		return nil, err
	}
	result.Listings = listingRows

	result.Bookings, result.SkippedBookings = s.createBookings(ctx, users, listingRows, counts.Bookings)
	result.Reviews, result.SkippedReviews = s.createReviews(ctx, users, listingRows, counts.Reviews)

	s.log.Info().
		Int("users", len(result.Users)).
		Int("listings", len(result.Listings)).
		Int("bookings", len(result.Bookings)).
		Int("reviews", len(result.Reviews)).
		Int("skipped_bookings", result.SkippedBookings).
		Int("skipped_reviews", result.SkippedReviews).
		Msg("seeding finished")
	return result, nil
}

func (s *Seeder) createUsers(ctx context.Context, count int) ([]domain.User, error) {
	s.log.Info().Int("count", count).Msg("creating users")

	users := make([]domain.User, 0, count)
	for i := 0; i < count; i++ {
		var username, first, last, email string
		if i < len(userData) {
			username, first, last, email = userData[i][0], userData[i][1], userData[i][2], userData[i][3]
		} else {
			username = fmt.Sprintf("user_%d", i+1)
			first, last = "User", fmt.Sprintf("%d", i+1)
			email = fmt.Sprintf("user%d@example.com", i+1)
		}

		existing, err := s.users.GetByUsername(ctx, username)
		if err == nil {
			users = append(users, *existing)
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("lookup user %s: %w", username, err)
		}

		user := domain.User{
			ID:        uuid.New(),
			Username:  username,
			FirstName: first,
			LastName:  last,
			Email:     email,
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", username, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createListings(ctx context.Context, users []domain.User, count int) ([]domain.Listing, error) {
	s.log.Info().Int("count", count).Msg("creating listings")

	created := make([]domain.Listing, 0, count)
	for i := 0; i < count; i++ {
		var tpl listingTemplate
		if i < len(listingTemplates) {
			tpl = listingTemplates[i]
		} else {
			tpl = listingTemplate{
				title:       fmt.Sprintf("Property #%d", i+1),
				description: fmt.Sprintf("A wonderful place to stay in location #%d.", i+1),
				location:    additionalLocations[s.rng.Intn(len(additionalLocations))],
				priceCents:  int64(50+s.rng.Intn(251)) * 100,
				maxGuests:   1 + s.rng.Intn(8),
				bedrooms:    1 + s.rng.Intn(4),
				bathrooms:   1 + s.rng.Intn(3),
			}
		}

		host := users[s.rng.Intn(len(users))]
		listing, err := s.listingSvc.CreateListing(ctx, listings.ListingInput{
			HostID:             host.ID,
			Title:              tpl.title,
			Description:        tpl.description,
			Location:           tpl.location,
			PricePerNightCents: tpl.priceCents,
			MaxGuests:          tpl.maxGuests,
			Bedrooms:           tpl.bedrooms,
			Bathrooms:          tpl.bathrooms,
			IsAvailable:        s.rng.Intn(4) != 0, // 75% available
		})
		if err != nil {
			return nil, fmt.Errorf("create listing %d: %w", i+1, err)
		}
		created = append(created, *listing)
	}
	return created, nil
}

func (s *Seeder) createBookings(ctx context.Context, users []domain.User, listingRows []domain.Listing, count int) ([]domain.Booking, int) {
	s.log.Info().Int("count", count).Msg("creating bookings")

	var created []domain.Booking
	skipped := 0
	for i := 0; i < count; i++ {
		listing := listingRows[s.rng.Intn(len(listingRows))]
		guest, ok := s.pickOtherUser(users, listing.HostID)
		if !ok {
			skipped++
			continue
		}

		// The [-30, +60] window intentionally produces past-dated
		// check-ins that the validator rejects.
		checkIn := domain.DateOnly(s.now()).AddDate(0, 0, s.rng.Intn(91)-30)
		duration := 1 + s.rng.Intn(14)
		checkOut := checkIn.AddDate(0, 0, duration)

		maxGuests := listing.MaxGuests
		if maxGuests > 4 {
			maxGuests = 4
		}
		numGuests := 1 + s.rng.Intn(maxGuests)

		b, err := s.bookingSvc.CreateBooking(ctx, booking.CreateBookingInput{
			ListingID: listing.ID,
			GuestID:   guest.ID,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			NumGuests: numGuests,
		})
		if err != nil {
			if domain.IsValidation(err) {
				s.log.Debug().Err(err).Int("booking", i+1).Msg("booking rejected by validator")
			} else {
				s.log.Warn().Err(err).Int("booking", i+1).Msg("skipped booking")
			}
			skipped++
			continue
		}

		// Status transitions are externally driven; the seeder assigns a
		// weighted one after the validator has accepted the booking.
		status := s.weightedStatus()
		if status != domain.BookingStatusPending {
			updated, err := s.bookingRepo.UpdateStatus(ctx, b.ID, status)
			if err != nil {
				s.log.Warn().Err(err).Str("booking_id", b.ID.String()).Msg("failed to set booking status")
			} else {
				b = updated
			}
		}
		created = append(created, *b)
	}
	return created, skipped
}

func (s *Seeder) createReviews(ctx context.Context, users []domain.User, listingRows []domain.Listing, count int) ([]domain.Review, int) {
	s.log.Info().Int("count", count).Msg("creating reviews")

	var created []domain.Review
	seen := make(map[[2]uuid.UUID]bool)
	skipped := 0

	for i := 0; i < count; i++ {
		attempts := 0
		placed := false
		for attempts < maxReviewAttempts {
			listing := listingRows[s.rng.Intn(len(listingRows))]
			reviewer, ok := s.pickOtherUser(users, listing.HostID)
			if !ok {
				attempts++
				continue
			}

			key := [2]uuid.UUID{listing.ID, reviewer.ID}
			if seen[key] {
				attempts++
				continue
			}

			review, err := s.reviewSvc.CreateReview(ctx, reviews.CreateReviewInput{
				ListingID:  listing.ID,
				ReviewerID: reviewer.ID,
				Rating:     s.weightedRating(),
				Comment:    reviewComments[s.rng.Intn(len(reviewComments))],
			})
			if err != nil {
				if domain.IsValidation(err) {
					s.log.Debug().Err(err).Int("review", i+1).Msg("review rejected by validator")
				} else {
					s.log.Warn().Err(err).Int("review", i+1).Msg("skipped review")
				}
				skipped++
				placed = true
				break
			}
			seen[key] = true
			created = append(created, *review)
			placed = true
			break
		}
		if !placed {
			s.log.Warn().Int("review", i+1).Int("attempts", maxReviewAttempts).
				Msg("could not find unique listing/reviewer pair")
			skipped++
		}
	}
	return created, skipped
}

func (s *Seeder) pickOtherUser(users []domain.User, exclude uuid.UUID) (domain.User, bool) {
	candidates := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID != exclude {
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return domain.User{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

// weightedStatus skews toward confirmed bookings:
// pending 10%, confirmed 60%, canceled 10%, completed 20%.
func (s *Seeder) weightedStatus() domain.BookingStatus {
	switch v := s.rng.Float64(); {
	case v < 0.1:
		return domain.BookingStatusPending
	case v < 0.7:
		return domain.BookingStatusConfirmed
	case v < 0.8:
		return domain.BookingStatusCanceled
	default:
		return domain.BookingStatusCompleted
	}
}

// weightedRating skews toward higher ratings:
// 1:5%, 2:5%, 3:15%, 4:35%, 5:40%.
func (s *Seeder) weightedRating() int {
	switch v := s.rng.Float64(); {
	case v < 0.05:
		return 1
	case v < 0.10:
		return 2
	case v < 0.25:
		return 3
	case v < 0.60:
		return 4
	default:
		return 5
	}
}
