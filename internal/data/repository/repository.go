package repository

import (
	"freelance-market/pkg/cache"
	"freelance-market/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Profile ProfileRepository
	Session SessionRepository
	Package OfferPackageRepository
	Offer   OfferRepository
	Order   OrderRepository
	Review  ReviewRepository
}

func NewRepository(db database.PgxIface, redis *cache.Redis, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Profile: NewProfileRepository(db, log),
		Session: NewSessionRepository(db, redis, log),
		Package: NewOfferPackageRepository(db, log),
		Offer:   NewOfferRepository(db, log),
		Order:   NewOrderRepository(db, log),
		Review:  NewReviewRepository(db, log),
	}
}
