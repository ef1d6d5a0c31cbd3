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

// ProfileRepository reads and updates profiles. Creation happens inside the
// registration transaction, see UserRepository.CreateWithProfile.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	FindDetailByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileDetail, error)
	ListDetailsByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.ProfileDetail, error)
	CountByType(ctx context.Context, profileType entity.ProfileType) (int64, error)
	Update(ctx context.Context, profile *entity.Profile) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT user_id, type, location, tel, description, working_hours, file, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Type,
		&profile.Location,
		&profile.Tel,
		&profile.Description,
		&profile.WorkingHours,
		&profile.File,
		&profile.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile for user %s: %w", userID.String(), err)
	}

	return &profile, nil
}

const profileDetailQuery = `
	SELECT p.user_id, p.type, p.location, p.tel, p.description, p.working_hours, p.file, p.created_at,
	       u.username, u.first_name, u.last_name, u.email
	FROM profiles p
	JOIN users u ON u.id = p.user_id
`

func scanProfileDetail(row pgx.Row) (*entity.ProfileDetail, error) {
	var detail entity.ProfileDetail
	err := row.Scan(
		&detail.UserID,
		&detail.Type,
		&detail.Location,
		&detail.Tel,
		&detail.Description,
		&detail.WorkingHours,
		&detail.File,
		&detail.CreatedAt,
		&detail.Username,
		&detail.FirstName,
		&detail.LastName,
		&detail.Email,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *profileRepository) FindDetailByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileDetail, error) {
	query := profileDetailQuery + ` WHERE p.user_id = $1`

	detail, err := scanProfileDetail(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile detail",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile detail for user %s: %w", userID.String(), err)
	}

	return detail, nil
}

func (r *profileRepository) ListDetailsByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.ProfileDetail, error) {
	query := profileDetailQuery + ` WHERE p.type = $1 ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, profileType)
	if err != nil {
		r.log.Error("Failed to list profiles by type",
			zap.Error(err),
			zap.String("type", string(profileType)),
		)
		return nil, fmt.Errorf("list %s profiles: %w", profileType, err)
	}
	defer rows.Close()

	var details []*entity.ProfileDetail
	for rows.Next() {
		detail, err := scanProfileDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan profile row", zap.Error(err))
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		details = append(details, detail)
	}

	return details, nil
}

func (r *profileRepository) CountByType(ctx context.Context, profileType entity.ProfileType) (int64, error) {
	query := `SELECT COUNT(*) FROM profiles WHERE type = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, profileType).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count profiles by type",
			zap.Error(err),
			zap.String("type", string(profileType)),
		)
		return 0, fmt.Errorf("count %s profiles: %w", profileType, err)
	}

	return count, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	// Type is immutable, deliberately not part of the update set.
	query := `
		UPDATE profiles
		SET location = $2, tel = $3, description = $4, working_hours = $5
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Location,
		profile.Tel,
		profile.Description,
		profile.WorkingHours,
	)

	if err != nil {
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update profile for user %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", profile.UserID.String())
	}

	return nil
}
