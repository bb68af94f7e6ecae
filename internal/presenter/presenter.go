// Package presenter shapes domain values into the plain records exposed
// at the API boundary. Detail shapes nest related entities; summary
// shapes flatten them for list responses.
package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/Domenick1991/homestay/internal/service/booking"
)

const dateLayout = "2006-01-02"

type UserRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ReviewRecord struct {
	ReviewID  string     `json:"review_id"`
	Reviewer  UserRecord `json:"reviewer"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListingDetail struct {
	ListingID     string         `json:"listing_id"`
	Host          UserRecord     `json:"host"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Location      string         `json:"location"`
	PricePerNight string         `json:"price_per_night"`
	MaxGuests     int            `json:"max_guests"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	IsAvailable   bool           `json:"is_available"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Reviews       []ReviewRecord `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
}

type ListingSummary struct {
	ListingID     string  `json:"listing_id"`
	Title         string  `json:"title"`
	Location      string  `json:"location"`
	PricePerNight string  `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	IsAvailable   bool    `json:"is_available"`
	HostName      string  `json:"host_name"`
	AverageRating float64 `json:"average_rating"`
}

type BookingDetail struct {
	BookingID    string        `json:"booking_id"`
	Listing      ListingDetail `json:"listing"`
	Guest        UserRecord    `json:"guest"`
	CheckInDate  string        `json:"check_in_date"`
	CheckOutDate string        `json:"check_out_date"`
	NumGuests    int           `json:"num_guests"`
	TotalPrice   string        `json:"total_price"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	DurationDays int           `json:"duration_days"`
}

type BookingSummary struct {
	BookingID    string    `json:"booking_id"`
	ListingTitle string    `json:"listing_title"`
	GuestName    string    `json:"guest_name"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	Status       string    `json:"status"`
	TotalPrice   string    `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// FormatCents renders integer cents as a two-digit decimal string.
// Integer arithmetic keeps nightly-rate totals exact.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseCents reads a decimal money string ("120", "120.5", "120.00")
// into integer cents. At most two fraction digits are accepted.
func ParseCents(value string) (int64, error) {
	value = strings.TrimSpace(value)
	negative := strings.HasPrefix(value, "-")
	if negative {
		value = value[1:]
	}

	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", value)
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", value)
	}

	var centsPart int64
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", value)
		}
		centsPart = d * 10
	case 2:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", value)
		}
		centsPart = d
	default:
		return 0, fmt.Errorf("invalid amount %q: at most two fraction digits", value)
	}

	cents := units*100 + centsPart
	if negative {
		cents = -cents
	}
	return cents, nil
}

func PresentUser(u domain.User) UserRecord {
	return UserRecord{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func PresentReview(r domain.ReviewWithReviewer) ReviewRecord {
	return ReviewRecord{
		ReviewID:  r.Review.ID.String(),
		Reviewer:  PresentUser(r.Reviewer),
		Rating:    r.Review.Rating,
		Comment:   r.Review.Comment,
		CreatedAt: r.Review.CreatedAt,
	}
}

func PresentListingDetail(d domain.ListingDetail) ListingDetail {
	reviews := make([]ReviewRecord, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		reviews = append(reviews, PresentReview(r))
	}
	return ListingDetail{
		ListingID:     d.Listing.ID.String(),
		Host:          PresentUser(d.Host),
		Title:         d.Listing.Title,
		Description:   d.Listing.Description,
		Location:      d.Listing.Location,
		PricePerNight: FormatCents(d.Listing.PricePerNightCents),
		MaxGuests:     d.Listing.MaxGuests,
		Bedrooms:      d.Listing.Bedrooms,
		Bathrooms:     d.Listing.Bathrooms,
		IsAvailable:   d.Listing.IsAvailable,
		CreatedAt:     d.Listing.CreatedAt,
		UpdatedAt:     d.Listing.UpdatedAt,
		Reviews:       reviews,
		AverageRating: d.AverageRating,
		ReviewCount:   d.ReviewCount,
	}
}

func PresentListingSummary(s domain.ListingSummary) ListingSummary {
	return ListingSummary{
		ListingID:     s.ListingID.String(),
		Title:         s.Title,
		Location:      s.Location,
		PricePerNight: FormatCents(s.PricePerNightCents),
		MaxGuests:     s.MaxGuests,
		Bedrooms:      s.Bedrooms,
		Bathrooms:     s.Bathrooms,
		IsAvailable:   s.IsAvailable,
		HostName:      s.HostName,
		AverageRating: s.AverageRating,
	}
}

func PresentListingSummaries(summaries []domain.ListingSummary) []ListingSummary {
	out := make([]ListingSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, PresentListingSummary(s))
	}
	return out
}

func PresentBookingDetail(d booking.BookingDetail) BookingDetail {
	return BookingDetail{
		BookingID:    d.Booking.ID.String(),
		Listing:      PresentListingDetail(d.Listing),
		Guest:        PresentUser(d.Guest),
		CheckInDate:  d.Booking.CheckIn.Format(dateLayout),
		CheckOutDate: d.Booking.CheckOut.Format(dateLayout),
		NumGuests:    d.Booking.NumGuests,
		TotalPrice:   FormatCents(d.Booking.TotalPriceCents),
		Status:       string(d.Booking.Status),
		CreatedAt:    d.Booking.CreatedAt,
		DurationDays: d.Booking.DurationDays(),
	}
}

func PresentBookingSummary(s domain.BookingSummary) BookingSummary {
	return BookingSummary{
		BookingID:    s.BookingID.String(),
		ListingTitle: s.ListingTitle,
		GuestName:    s.GuestName,
		CheckInDate:  s.CheckIn.Format(dateLayout),
		CheckOutDate: s.CheckOut.Format(dateLayout),
		Status:       string(s.Status),
		TotalPrice:   FormatCents(s.TotalPriceCents),
		CreatedAt:    s.CreatedAt,
	}
}

func PresentBookingSummaries(summaries []domain.BookingSummary) []BookingSummary {
	out := make([]BookingSummary, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, PresentBookingSummary(s))
	}
	return out
}
