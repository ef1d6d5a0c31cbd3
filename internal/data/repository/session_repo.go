package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/cache"
	"freelance-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepository struct {
	db    database.PgxIface
	redis *cache.Redis
	log   *zap.Logger
}

func NewSessionRepository(db database.PgxIface, redis *cache.Redis, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:    db,
		redis: redis,
		log:   log.With(zap.String("repository", "session")),
	}
}

// cachedSession is what gets stored in redis under session:<token>.
type cachedSession struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func sessionCacheKey(token string) string {
	return "session:" + token
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("create session for user %s: %w", session.UserID.String(), err)
	}

	r.cacheSession(ctx, session)

	return nil
}

// FindValidSession resolves a bearer token. Redis is consulted first; on a
// miss the database answers and the result is cached for the remaining
// session lifetime. Returns nil for unknown, expired, or revoked tokens.
func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if session := r.cachedSession(ctx, token); session != nil {
		return session, nil
	}

	query := `
		SELECT id, user_id, token, expires_at, revoked_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW() AND revoked_at IS NULL
	`

	var session entity.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	r.cacheSession(ctx, &session)

	return &session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	query := `
		UPDATE sessions
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found")
	}

	if r.redis != nil && r.redis.Client != nil {
		if err := r.redis.Client.Del(ctx, sessionCacheKey(token)).Err(); err != nil {
			r.log.Warn("Failed to evict session from cache", zap.Error(err))
		}
	}

	return nil
}

func (r *sessionRepository) cachedSession(ctx context.Context, token string) *entity.Session {
	if r.redis == nil || r.redis.Client == nil {
		return nil
	}

	raw, err := r.redis.Client.Get(ctx, sessionCacheKey(token)).Result()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("Session cache lookup failed", zap.Error(err))
		}
		return nil
	}

	var cached cachedSession
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		r.log.Warn("Corrupt cached session", zap.Error(err))
		return nil
	}

	if time.Now().After(cached.ExpiresAt) {
		return nil
	}

	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: cached.ID},
		UserID:     cached.UserID,
		Token:      tokenUUID,
		ExpiresAt:  cached.ExpiresAt,
	}
}

func (r *sessionRepository) cacheSession(ctx context.Context, session *entity.Session) {
	if r.redis == nil || r.redis.Client == nil {
		return
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}

	raw, err := json.Marshal(cachedSession{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return
	}

	key := sessionCacheKey(session.Token.String())
	if err := r.redis.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		r.log.Warn("Failed to cache session", zap.Error(err))
	}
}
