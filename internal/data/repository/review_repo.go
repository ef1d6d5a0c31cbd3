package repository

import (
	"context"
	"fmt"
	"strings"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewFilter narrows the review listing. Nil means no filter.
type ReviewFilter struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string // "updated_at" or "rating", default newest first
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBusinessAndReviewer(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Aggregates for the public base-info endpoint
	CountAll(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (*float64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, business_user_id, reviewer_id, rating, description, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.BusinessUserID,
		&review.ReviewerID,
		&review.Rating,
		&review.Description,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, business_user_id, reviewer_id, rating, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.BusinessUserID,
		review.ReviewerID,
		review.Rating,
		review.Description,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("business_user_id", review.BusinessUserID.String()),
			zap.String("reviewer_id", review.ReviewerID.String()),
		)
		return fmt.Errorf("create review for business user %s by %s: %w",
			review.BusinessUserID.String(), review.ReviewerID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByBusinessAndReviewer(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE business_user_id = $1 AND reviewer_id = $2
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, businessUserID, reviewerID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by business and reviewer",
			zap.Error(err),
			zap.String("business_user_id", businessUserID.String()),
			zap.String("reviewer_id", reviewerID.String()),
		)
		return nil, fmt.Errorf("find review by business user %s and reviewer %s: %w",
			businessUserID.String(), reviewerID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error) {
	var conditions []string
	var args []interface{}

	if filter.BusinessUserID != nil {
		args = append(args, *filter.BusinessUserID)
		conditions = append(conditions, fmt.Sprintf("business_user_id = $%d", len(args)))
	}
	if filter.ReviewerID != nil {
		args = append(args, *filter.ReviewerID)
		conditions = append(conditions, fmt.Sprintf("reviewer_id = $%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch filter.Ordering {
	case "updated_at":
		query += " ORDER BY updated_at DESC"
	case "rating":
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Description,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context) (*float64, error) {
	// NULL when there are no reviews yet
	query := `SELECT AVG(rating) FROM reviews`

	var avg *float64
	if err := r.db.QueryRow(ctx, query).Scan(&avg); err != nil {
		r.log.Error("Failed to get average rating", zap.Error(err))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	return avg, nil
}
