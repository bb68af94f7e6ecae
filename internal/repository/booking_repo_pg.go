package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.BookingSummary, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.BookingSummary, error)
	CompleteFinishedBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
	DeleteAll(ctx context.Context) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, listing_id, guest_id, check_in_date, check_out_date, num_guests, total_price_cents, status, created_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, listing_id, guest_id, check_in_date, check_out_date, num_guests, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		booking.ID, booking.ListingID, booking.GuestID, booking.CheckIn, booking.CheckOut,
		booking.NumGuests, booking.TotalPriceCents, booking.Status).
		Scan(&booking.CreatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$2 WHERE id=$1 RETURNING `+bookingColumns, id, status)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.BookingSummary, error) {
	return r.listSummaries(ctx, `b.listing_id=$1`, listingID)
}

func (r *PGBookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.BookingSummary, error) {
	return r.listSummaries(ctx, `b.guest_id=$1`, guestID)
}

func (r *PGBookingRepository) listSummaries(ctx context.Context, where string, arg any) ([]domain.BookingSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, l.title, u.username, b.check_in_date, b.check_out_date, b.status, b.total_price_cents, b.created_at
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		JOIN users u ON u.id = b.guest_id
		WHERE `+where+`
		ORDER BY b.created_at DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.BookingSummary
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(&s.BookingID, &s.ListingTitle, &s.GuestName, &s.CheckIn, &s.CheckOut,
			&s.Status, &s.TotalPriceCents, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CompleteFinishedBefore flips confirmed bookings whose check-out has
// passed to completed and returns them for event publishing.
func (r *PGBookingRepository) CompleteFinishedBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1 WHERE status=$2 AND check_out_date <= $3 RETURNING `+bookingColumns,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completed []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.ListingID, &b.GuestID, &b.CheckIn, &b.CheckOut,
			&b.NumGuests, &b.TotalPriceCents, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		completed = append(completed, b)
	}
	return completed, rows.Err()
}

func (r *PGBookingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings`)
	return err
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.ListingID, &b.GuestID, &b.CheckIn, &b.CheckOut,
		&b.NumGuests, &b.TotalPriceCents, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
