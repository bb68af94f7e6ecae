package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListSummaries(ctx context.Context) ([]domain.ListingSummary, error)
	RatingStats(ctx context.Context, id uuid.UUID) (avg float64, count int, err error)
	DeleteAll(ctx context.Context) error
}

type PGListingRepository struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &PGListingRepository{db: db}
}

const listingColumns = `id, host_id, title, description, location, price_per_night_cents, max_guests, bedrooms, bathrooms, is_available, created_at, updated_at`

func (r *PGListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.QueryRow(ctx, `INSERT INTO listings (id, host_id, title, description, location, price_per_night_cents, max_guests, bedrooms, bathrooms, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		listing.ID, listing.HostID, listing.Title, listing.Description, listing.Location,
		listing.PricePerNightCents, listing.MaxGuests, listing.Bedrooms, listing.Bathrooms, listing.IsAvailable).
		Scan(&listing.CreatedAt, &listing.UpdatedAt)
}

func (r *PGListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id=$1`, id)
	var l domain.Listing
	if err := row.Scan(&l.ID, &l.HostID, &l.Title, &l.Description, &l.Location, &l.PricePerNightCents,
		&l.MaxGuests, &l.Bedrooms, &l.Bathrooms, &l.IsAvailable, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *PGListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	row := r.db.QueryRow(ctx, `UPDATE listings SET title=$2, description=$3, location=$4, price_per_night_cents=$5,
		max_guests=$6, bedrooms=$7, bathrooms=$8, is_available=$9, updated_at=now()
		WHERE id=$1 RETURNING updated_at`,
		listing.ID, listing.Title, listing.Description, listing.Location, listing.PricePerNightCents,
		listing.MaxGuests, listing.Bedrooms, listing.Bathrooms, listing.IsAvailable)
	if err := row.Scan(&listing.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes the listing; bookings and reviews go with it through
// ON DELETE CASCADE on their foreign keys.
func (r *PGListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGListingRepository) ListSummaries(ctx context.Context) ([]domain.ListingSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT l.id, l.title, l.location, l.price_per_night_cents, l.max_guests,
			l.bedrooms, l.bathrooms, l.is_available, u.username,
			COALESCE(AVG(rv.rating), 0)
		FROM listings l
		JOIN users u ON u.id = l.host_id
		LEFT JOIN reviews rv ON rv.listing_id = l.id
		GROUP BY l.id, u.username
		ORDER BY l.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ListingSummary
	for rows.Next() {
		var s domain.ListingSummary
		if err := rows.Scan(&s.ListingID, &s.Title, &s.Location, &s.PricePerNightCents, &s.MaxGuests,
			&s.Bedrooms, &s.Bathrooms, &s.IsAvailable, &s.HostName, &s.AverageRating); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// RatingStats aggregates in SQL; a listing with no reviews yields avg 0,
// never NULL.
func (r *PGListingRepository) RatingStats(ctx context.Context, id uuid.UUID) (float64, int, error) {
	var avg float64
	var count int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE listing_id=$1`, id).
		Scan(&avg, &count)
	return avg, count, err
}

func (r *PGListingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM listings`)
	return err
}
