package usecase

import (
	"context"
	"fmt"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/dto/request"
	"freelance-market/internal/dto/response"
	"freelance-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, callerID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	ListBusinessProfiles(ctx context.Context) ([]*response.ProfileResponse, error)
	ListCustomerProfiles(ctx context.Context) ([]*response.CustomerProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	detail, err := s.repo.Profile.FindDetailByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("profile %s not found", userID)
	}

	return response.ProfileToResponse(detail), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, callerID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	// 2. Ownership before any mutation
	if id != callerID {
		s.log.Warn("Profile update denied",
			zap.String("user_id", userID),
			zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("forbidden: not the profile owner")
	}

	// 3. Load current state
	detail, err := s.repo.Profile.FindDetailByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load profile for update", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("profile %s not found", userID)
	}

	// 4. Apply partial profile fields
	profile := detail.Profile
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Tel != nil {
		profile.Tel = *req.Tel
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.WorkingHours != nil {
		profile.WorkingHours = *req.WorkingHours
	}

	if err := s.repo.Profile.Update(ctx, &profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	// 5. Apply partial user account fields
	if req.FirstName != nil || req.LastName != nil || req.Email != nil {
		user, err := s.repo.User.FindByID(ctx, id)
		if err != nil || user == nil {
			s.log.Error("Failed to load user for profile update", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("update profile: user not found")
		}

		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		user.UpdatedAt = time.Now()

		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to update user fields", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("update profile: %w", err)
		}
	}

	updated, err := s.repo.Profile.FindDetailByUserID(ctx, id)
	if err != nil || updated == nil {
		s.log.Error("Failed to reload profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	return response.ProfileToResponse(updated), nil
}

func (s *profileService) ListBusinessProfiles(ctx context.Context) ([]*response.ProfileResponse, error) {
	details, err := s.repo.Profile.ListDetailsByType(ctx, entity.ProfileTypeBusiness)
	if err != nil {
		s.log.Error("Failed to list business profiles", zap.Error(err))
		return nil, fmt.Errorf("list business profiles: %w", err)
	}

	profiles := make([]*response.ProfileResponse, 0, len(details))
	for _, detail := range details {
		profiles = append(profiles, response.ProfileToResponse(detail))
	}

	return profiles, nil
}

func (s *profileService) ListCustomerProfiles(ctx context.Context) ([]*response.CustomerProfileResponse, error) {
	details, err := s.repo.Profile.ListDetailsByType(ctx, entity.ProfileTypeCustomer)
	if err != nil {
		s.log.Error("Failed to list customer profiles", zap.Error(err))
		return nil, fmt.Errorf("list customer profiles: %w", err)
	}

	profiles := make([]*response.CustomerProfileResponse, 0, len(details))
	for _, detail := range details {
		profiles = append(profiles, response.CustomerProfileToResponse(detail))
	}

	return profiles, nil
}
