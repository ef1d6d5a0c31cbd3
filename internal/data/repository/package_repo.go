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

type OfferPackageRepository interface {
	// CreateWithOffers persists the package and its three offers in one
	// transaction. Nothing is written if any insert fails.
	CreateWithOffers(ctx context.Context, pkg *entity.OfferPackage, offers []*entity.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferPackage, error)
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.PackageListing, error)
	List(ctx context.Context, filter PackageFilter) ([]*entity.PackageListing, error)
	Count(ctx context.Context, filter PackageFilter) (int64, error)
	Update(ctx context.Context, pkg *entity.OfferPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type offerPackageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOfferPackageRepository(db database.PgxIface, log *zap.Logger) OfferPackageRepository {
	return &offerPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "offer_package")),
	}
}

func (r *offerPackageRepository) CreateWithOffers(ctx context.Context, pkg *entity.OfferPackage, offers []*entity.Offer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin package create: %w", err)
	}
	defer tx.Rollback(ctx)

	packageQuery := `
		INSERT INTO offer_packages (id, user_id, title, image, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, packageQuery,
		pkg.ID,
		pkg.UserID,
		pkg.Title,
		pkg.Image,
		pkg.Description,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert package",
			zap.Error(err),
			zap.String("user_id", pkg.UserID.String()),
		)
		return fmt.Errorf("insert package: %w", err)
	}

	offerQuery := `
		INSERT INTO offers (id, package_id, title, offer_type, delivery_time_in_days, revisions, price, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, offer := range offers {
		_, err = tx.Exec(ctx, offerQuery,
			offer.ID,
			offer.PackageID,
			offer.Title,
			offer.OfferType,
			offer.DeliveryTimeInDays,
			offer.Revisions,
			offer.Price,
			offer.Features,
		)
		if err != nil {
			r.log.Error("Failed to insert offer",
				zap.Error(err),
				zap.String("package_id", pkg.ID.String()),
				zap.String("offer_type", string(offer.OfferType)),
			)
			return fmt.Errorf("insert %s offer: %w", offer.OfferType, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit package create", zap.Error(err))
		return fmt.Errorf("commit package create: %w", err)
	}

	return nil
}

func (r *offerPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferPackage, error) {
	query := `
		SELECT id, user_id, title, image, description, created_at, updated_at
		FROM offer_packages
		WHERE id = $1
	`

	var pkg entity.OfferPackage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.UserID,
		&pkg.Title,
		&pkg.Image,
		&pkg.Description,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func scanPackageListing(row pgx.Row) (*entity.PackageListing, error) {
	var listing entity.PackageListing
	err := row.Scan(
		&listing.ID,
		&listing.UserID,
		&listing.Title,
		&listing.Image,
		&listing.Description,
		&listing.CreatedAt,
		&listing.UpdatedAt,
		&listing.MinPrice,
		&listing.MinDeliveryTime,
		&listing.Username,
		&listing.FirstName,
		&listing.LastName,
	)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *offerPackageRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.PackageListing, error) {
	query, args, err := buildPackageDetailQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build package detail query: %w", err)
	}

	listing, err := scanPackageListing(r.db.QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package listing",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package listing %s: %w", id.String(), err)
	}

	return listing, nil
}

func (r *offerPackageRepository) List(ctx context.Context, filter PackageFilter) ([]*entity.PackageListing, error) {
	query, args, err := buildPackageListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build package list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var listings []*entity.PackageListing
	for rows.Next() {
		listing, err := scanPackageListing(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func (r *offerPackageRepository) Count(ctx context.Context, filter PackageFilter) (int64, error) {
	query, args, err := buildPackageCountQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("build package count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count packages", zap.Error(err))
		return 0, fmt.Errorf("count packages: %w", err)
	}

	return count, nil
}

func (r *offerPackageRepository) Update(ctx context.Context, pkg *entity.OfferPackage) error {
	query := `
		UPDATE offer_packages
		SET title = $2, image = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Title,
		pkg.Image,
		pkg.Description,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("update package %s: %w", pkg.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *offerPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Offers go with the package via FK cascade.
	query := `DELETE FROM offer_packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}
