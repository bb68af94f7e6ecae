package repository

import (
	"context"

	"github.com/Domenick1991/homestay/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ExistsByListingAndReviewer(ctx context.Context, listingID, reviewerID uuid.UUID) (bool, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.ReviewWithReviewer, error)
	DeleteAll(ctx context.Context) error
}

type PGReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &PGReviewRepository{db: db}
}

func (r *PGReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.db.Exec(ctx, `INSERT INTO reviews (id, listing_id, reviewer_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		review.ID, review.ListingID, review.ReviewerID, review.Rating, review.Comment, review.CreatedAt)
	return err
}

func (r *PGReviewRepository) ExistsByListingAndReviewer(ctx context.Context, listingID, reviewerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reviews WHERE listing_id=$1 AND reviewer_id=$2)`,
		listingID, reviewerID).Scan(&exists)
	return exists, err
}

func (r *PGReviewRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.ReviewWithReviewer, error) {
	rows, err := r.db.Query(ctx, `SELECT rv.id, rv.listing_id, rv.reviewer_id, rv.rating, rv.comment, rv.created_at,
			u.id, u.username, u.first_name, u.last_name, u.email, u.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.reviewer_id
		WHERE rv.listing_id=$1
		ORDER BY rv.created_at DESC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.ReviewWithReviewer
	for rows.Next() {
		var rw domain.ReviewWithReviewer
		if err := rows.Scan(&rw.Review.ID, &rw.Review.ListingID, &rw.Review.ReviewerID, &rw.Review.Rating,
			&rw.Review.Comment, &rw.Review.CreatedAt,
			&rw.Reviewer.ID, &rw.Reviewer.Username, &rw.Reviewer.FirstName, &rw.Reviewer.LastName,
			&rw.Reviewer.Email, &rw.Reviewer.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rw)
	}
	return reviews, rows.Err()
}

func (r *PGReviewRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews`)
	return err
}
