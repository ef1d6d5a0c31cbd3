package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/dto/request"
	"freelance-market/internal/dto/response"
	"freelance-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReview(ctx context.Context, id string) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, query url.Values) ([]*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id string, callerID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, reviewerID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	businessUserID, err := uuid.Parse(req.BusinessUserID)
	if err != nil {
		return nil, utils.NewValidationError(map[string]string{
			"business_user": "Invalid user ID format",
		})
	}

	// 2. The target must be an existing business profile
	profile, err := s.repo.Profile.FindByUserID(ctx, businessUserID)
	if err != nil {
		s.log.Error("Failed to resolve business profile", zap.Error(err), zap.String("business_user_id", req.BusinessUserID))
		return nil, fmt.Errorf("resolve business profile: %w", err)
	}
	if profile == nil || profile.Type != entity.ProfileTypeBusiness {
		return nil, fmt.Errorf("business user %s not found", req.BusinessUserID)
	}

	// 3. One review per business and reviewer pair
	existing, err := s.repo.Review.FindByBusinessAndReviewer(ctx, businessUserID, reviewerID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, utils.NewValidationError(map[string]string{
			"business_user": "You have already reviewed this business user",
		})
	}

	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessUserID: businessUserID,
		ReviewerID:     reviewerID,
		Rating:         req.Rating,
		Description:    req.Description,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("reviewer_id", reviewerID.String()))
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("business_user_id", businessUserID.String()),
		zap.String("reviewer_id", reviewerID.String()))

	return response.ReviewToResponse(review), nil
}

func (s *reviewService) GetReview(ctx context.Context, id string) (*response.ReviewResponse, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", id, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", id))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", id)
	}

	return response.ReviewToResponse(review), nil
}

func (s *reviewService) ListReviews(ctx context.Context, query url.Values) ([]*response.ReviewResponse, error) {
	filter := repository.ReviewFilter{
		Ordering: query.Get("ordering"),
	}
	errs := make(map[string]string)

	if raw := query.Get("business_user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs["business_user_id"] = fmt.Sprintf("Invalid value '%s'. Expected a user ID.", raw)
		} else {
			filter.BusinessUserID = &id
		}
	}

	if raw := query.Get("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs["reviewer_id"] = fmt.Sprintf("Invalid value '%s'. Expected a user ID.", raw)
		} else {
			filter.ReviewerID = &id
		}
	}

	if len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	reviews, err := s.repo.Review.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	result := make([]*response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, response.ReviewToResponse(review))
	}

	return result, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", id, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to load review for update", zap.Error(err), zap.String("review_id", id))
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", id)
	}

	// 2. Author only
	if review.ReviewerID != callerID {
		s.log.Warn("Review update denied",
			zap.String("review_id", id),
			zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("forbidden: not the review author")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Description != nil {
		review.Description = *req.Description
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", id))
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.String("review_id", id))

	return response.ReviewToResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string, callerID uuid.UUID) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", id, err)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to load review for delete", zap.Error(err), zap.String("review_id", id))
		return fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s not found", id)
	}

	if review.ReviewerID != callerID {
		s.log.Warn("Review delete denied",
			zap.String("review_id", id),
			zap.String("caller_id", callerID.String()))
		return fmt.Errorf("forbidden: not the review author")
	}

	return s.repo.Review.Delete(ctx, reviewID)
}
