package repository

import (
	"context"
	"fmt"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OfferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)
	// FindByIDWithOwner also resolves the owning business user through the
	// package, so order creation needs a single lookup.
	FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*entity.Offer, uuid.UUID, error)
	FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Offer, error)
	// FindByPackageIDs batch-loads offers for a page of packages in one
	// query, keyed by package id.
	FindByPackageIDs(ctx context.Context, packageIDs []uuid.UUID) (map[uuid.UUID][]*entity.Offer, error)
	FindByPackageAndType(ctx context.Context, packageID uuid.UUID, offerType entity.OfferType) (*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	CountAll(ctx context.Context) (int64, error)
}

type offerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOfferRepository(db database.PgxIface, log *zap.Logger) OfferRepository {
	return &offerRepository{
		db:  db,
		log: log.With(zap.String("repository", "offer")),
	}
}

const offerColumns = `id, package_id, title, offer_type, delivery_time_in_days, revisions, price, features`

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	var offer entity.Offer
	err := row.Scan(
		&offer.ID,
		&offer.PackageID,
		&offer.Title,
		&offer.OfferType,
		&offer.DeliveryTimeInDays,
		&offer.Revisions,
		&offer.Price,
		&offer.Features,
	)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	offer, err := scanOffer(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer by ID",
			zap.Error(err),
			zap.String("offer_id", id.String()),
		)
		return nil, fmt.Errorf("find offer by ID %s: %w", id.String(), err)
	}

	return offer, nil
}

func (r *offerRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*entity.Offer, uuid.UUID, error) {
	query := `
		SELECT o.id, o.package_id, o.title, o.offer_type, o.delivery_time_in_days,
		       o.revisions, o.price, o.features, p.user_id
		FROM offers o
		JOIN offer_packages p ON p.id = o.package_id
		WHERE o.id = $1
	`

	var offer entity.Offer
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID,
		&offer.PackageID,
		&offer.Title,
		&offer.OfferType,
		&offer.DeliveryTimeInDays,
		&offer.Revisions,
		&offer.Price,
		&offer.Features,
		&ownerID,
	)

	if err == pgx.ErrNoRows {
		return nil, uuid.Nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer with owner",
			zap.Error(err),
			zap.String("offer_id", id.String()),
		)
		return nil, uuid.Nil, fmt.Errorf("find offer with owner %s: %w", id.String(), err)
	}

	return &offer, ownerID, nil
}

func (r *offerRepository) FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE package_id = $1 ORDER BY offer_type`

	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find offers by package",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find offers by package %s: %w", packageID.String(), err)
	}
	defer rows.Close()

	var offers []*entity.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			r.log.Error("Failed to scan offer row", zap.Error(err))
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

func (r *offerRepository) FindByPackageIDs(ctx context.Context, packageIDs []uuid.UUID) (map[uuid.UUID][]*entity.Offer, error) {
	result := make(map[uuid.UUID][]*entity.Offer)
	if len(packageIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + offerColumns + ` FROM offers WHERE package_id = ANY($1) ORDER BY offer_type`

	rows, err := r.db.Query(ctx, query, packageIDs)
	if err != nil {
		r.log.Error("Failed to batch-load offers", zap.Error(err))
		return nil, fmt.Errorf("batch-load offers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			r.log.Error("Failed to scan offer row", zap.Error(err))
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		result[offer.PackageID] = append(result[offer.PackageID], offer)
	}

	return result, nil
}

func (r *offerRepository) FindByPackageAndType(ctx context.Context, packageID uuid.UUID, offerType entity.OfferType) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE package_id = $1 AND offer_type = $2`

	offer, err := scanOffer(r.db.QueryRow(ctx, query, packageID, offerType))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find offer by package and type",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
			zap.String("offer_type", string(offerType)),
		)
		return nil, fmt.Errorf("find %s offer in package %s: %w", offerType, packageID.String(), err)
	}

	return offer, nil
}

func (r *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	query := `
		UPDATE offers
		SET title = $2, delivery_time_in_days = $3, revisions = $4, price = $5, features = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		offer.ID,
		offer.Title,
		offer.DeliveryTimeInDays,
		offer.Revisions,
		offer.Price,
		offer.Features,
	)

	if err != nil {
		r.log.Error("Failed to update offer",
			zap.Error(err),
			zap.String("offer_id", offer.ID.String()),
		)
		return fmt.Errorf("update offer %s: %w", offer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("offer %s not found", offer.ID.String())
	}

	return nil
}

func (r *offerRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM offer_packages`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count offer packages", zap.Error(err))
		return 0, fmt.Errorf("count offer packages: %w", err)
	}

	return count, nil
}
