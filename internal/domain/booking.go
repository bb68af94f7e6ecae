package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is a guest's reservation of a listing for a range of calendar
// dates. CheckIn and CheckOut are dates normalized to midnight UTC.
type Booking struct {
	ID              uuid.UUID
	ListingID       uuid.UUID
	GuestID         uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	TotalPriceCents int64
	Status          BookingStatus
	CreatedAt       time.Time
}

// DurationDays is the stay length in whole days.
func (b Booking) DurationDays() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// BookingSummary is the flattened row for booking list views.
type BookingSummary struct {
	BookingID       uuid.UUID
	ListingTitle    string
	GuestName       string
	CheckIn         time.Time
	CheckOut        time.Time
	Status          BookingStatus
	TotalPriceCents int64
	CreatedAt       time.Time
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
