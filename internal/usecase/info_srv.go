package usecase

import (
	"context"
	"fmt"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/dto/response"

	"go.uber.org/zap"
)

type InfoService interface {
	GetBaseInfo(ctx context.Context) (*response.BaseInfoResponse, error)
}

type infoService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInfoService(repo *repository.Repository, log *zap.Logger) InfoService {
	return &infoService{
		repo: repo,
		log:  log.With(zap.String("service", "info")),
	}
}

func (s *infoService) GetBaseInfo(ctx context.Context) (*response.BaseInfoResponse, error) {
	reviewCount, err := s.repo.Review.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	// NULL average stays nil when there are no reviews
	averageRating, err := s.repo.Review.AverageRating(ctx)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	businessProfileCount, err := s.repo.Profile.CountByType(ctx, entity.ProfileTypeBusiness)
	if err != nil {
		s.log.Error("Failed to count business profiles", zap.Error(err))
		return nil, fmt.Errorf("count business profiles: %w", err)
	}

	offerCount, err := s.repo.Offer.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count offer packages", zap.Error(err))
		return nil, fmt.Errorf("count offer packages: %w", err)
	}

	return &response.BaseInfoResponse{
		ReviewCount:          reviewCount,
		AverageRating:        averageRating,
		BusinessProfileCount: businessProfileCount,
		OfferCount:           offerCount,
	}, nil
}
