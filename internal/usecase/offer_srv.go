package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/dto/request"
	"freelance-market/internal/dto/response"
	"freelance-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OfferService interface {
	ListPackages(ctx context.Context, params *request.OfferListParams) (*response.PaginatedResponse[*response.PackageResponse], error)
	GetPackage(ctx context.Context, id string) (*response.PackageResponse, error)
	GetOfferDetail(ctx context.Context, id string) (*response.OfferResponse, error)
	CreatePackage(ctx context.Context, userID uuid.UUID, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdatePackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, id string) error
}

type offerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOfferService(repo *repository.Repository, log *zap.Logger) OfferService {
	return &offerService{
		repo: repo,
		log:  log.With(zap.String("service", "offer")),
	}
}

func (s *offerService) ListPackages(ctx context.Context, params *request.OfferListParams) (*response.PaginatedResponse[*response.PackageResponse], error) {
	filter := repository.PackageFilter{
		CreatorID:       params.CreatorID,
		MinPrice:        params.MinPrice,
		MaxDeliveryTime: params.MaxDeliveryTime,
		Search:          params.Search,
		Ordering:        params.Ordering,
		Limit:           params.PageSize,
		Offset:          utils.CalculateOffset(params.Page, params.PageSize),
	}

	// 1. One query for the page of annotated packages
	listings, err := s.repo.Package.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}

	// 2. One query for the total under the same filters
	total, err := s.repo.Package.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count packages", zap.Error(err))
		return nil, fmt.Errorf("count packages: %w", err)
	}

	// 3. One batch query for the tier references of the whole page
	packageIDs := make([]uuid.UUID, 0, len(listings))
	for _, listing := range listings {
		packageIDs = append(packageIDs, listing.ID)
	}

	offersByPackage, err := s.repo.Offer.FindByPackageIDs(ctx, packageIDs)
	if err != nil {
		s.log.Error("Failed to load offers for page", zap.Error(err))
		return nil, fmt.Errorf("load offers for page: %w", err)
	}

	packages := make([]*response.PackageResponse, 0, len(listings))
	for _, listing := range listings {
		packages = append(packages, response.PackageToResponse(listing, offersByPackage[listing.ID], true))
	}

	return response.NewPaginatedResponse(packages, params.Page, params.PageSize, total), nil
}

func (s *offerService) GetPackage(ctx context.Context, id string) (*response.PackageResponse, error) {
	packageID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", id, err)
	}

	listing, err := s.repo.Package.FindListingByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to get package", zap.Error(err), zap.String("package_id", id))
		return nil, fmt.Errorf("get package: %w", err)
	}
	if listing == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}

	offers, err := s.repo.Offer.FindByPackageID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to load package offers", zap.Error(err), zap.String("package_id", id))
		return nil, fmt.Errorf("load package offers: %w", err)
	}

	return response.PackageToResponse(listing, offers, true), nil
}

func (s *offerService) GetOfferDetail(ctx context.Context, id string) (*response.OfferResponse, error) {
	offerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid offer ID format %s: %w", id, err)
	}

	offer, err := s.repo.Offer.FindByID(ctx, offerID)
	if err != nil {
		s.log.Error("Failed to get offer", zap.Error(err), zap.String("offer_id", id))
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %s not found", id)
	}

	return response.OfferToResponse(offer), nil
}

// validTiers is the exact tier set every package must carry.
var validTiers = map[entity.OfferType]bool{
	entity.OfferTypeBasic:    true,
	entity.OfferTypeStandard: true,
	entity.OfferTypePremium:  true,
}

// validateTierSet checks that the entries cover the tier set exactly once
// each. The returned message names every missing tier and every invalid or
// duplicated value, so one failed request reports the full shape problem.
func validateTierSet(entries []request.OfferEntry) map[string]string {
	errs := make(map[string]string)

	if len(entries) != 3 {
		errs["details"] = fmt.Sprintf("Expected exactly 3 offers, got %d", len(entries))
	}

	seen := make(map[entity.OfferType]int)
	var invalid []string
	for _, entry := range entries {
		tier := entity.OfferType(entry.OfferType)
		if !validTiers[tier] {
			invalid = append(invalid, entry.OfferType)
			continue
		}
		seen[tier]++
	}

	var missing []string
	for _, tier := range []entity.OfferType{entity.OfferTypeBasic, entity.OfferTypeStandard, entity.OfferTypePremium} {
		if seen[tier] == 0 {
			missing = append(missing, string(tier))
		} else if seen[tier] > 1 {
			invalid = append(invalid, string(tier)+" (duplicate)")
		}
	}

	if len(missing) > 0 {
		errs["offer_type"] = "Missing tiers: " + strings.Join(missing, ", ")
	}
	if len(invalid) > 0 {
		msg := "Invalid tiers: " + strings.Join(invalid, ", ")
		if existing, ok := errs["offer_type"]; ok {
			errs["offer_type"] = existing + ". " + msg
		} else {
			errs["offer_type"] = msg
		}
	}

	return errs
}

func (s *offerService) CreatePackage(ctx context.Context, userID uuid.UUID, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	// 1. Structural validation
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	// 2. Tier set validation, reported together with everything else
	for field, msg := range validateTierSet(req.Details) {
		errs[field] = msg
	}

	for i, entry := range req.Details {
		for field, msg := range utils.ValidateStruct(&entry) {
			errs[fmt.Sprintf("details[%d].%s", i, field)] = msg
		}
		// Zero is a valid price, a free tier is allowed
		if entry.Price.IsNegative() {
			errs[fmt.Sprintf("details[%d].price", i)] = "Price must not be negative"
		}
	}

	if len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	// 3. Build the package and its three offers
	now := time.Now()
	pkg := &entity.OfferPackage{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}

	offers := make([]*entity.Offer, 0, len(req.Details))
	for _, entry := range req.Details {
		offers = append(offers, &entity.Offer{
			ID:                 uuid.New(),
			PackageID:          pkg.ID,
			Title:              entry.Title,
			OfferType:          entity.OfferType(entry.OfferType),
			DeliveryTimeInDays: entry.DeliveryTimeInDays,
			Revisions:          entry.Revisions,
			Price:              entry.Price,
			Features:           entry.Features,
		})
	}

	// 4. All-or-nothing persist
	if err := s.repo.Package.CreateWithOffers(ctx, pkg, offers); err != nil {
		s.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("user_id", userID.String()))

	return s.GetPackage(ctx, pkg.ID.String())
}

func (s *offerService) UpdatePackage(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdatePackageRequest) (*response.PackageResponse, error) {
	// 1. Validate
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}
	for i, entry := range req.Details {
		for field, msg := range utils.ValidateStruct(&entry) {
			errs[fmt.Sprintf("details[%d].%s", i, field)] = msg
		}
		if entry.Price != nil && entry.Price.IsNegative() {
			errs[fmt.Sprintf("details[%d].price", i)] = "Price must not be negative"
		}
	}
	if len(errs) > 0 {
		s.log.Warn("Update package validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	packageID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", id, err)
	}

	// 2. Load and check ownership before touching anything
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to load package for update", zap.Error(err), zap.String("package_id", id))
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", id)
	}
	if pkg.UserID != callerID {
		s.log.Warn("Package update denied",
			zap.String("package_id", id),
			zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("forbidden: not the package owner")
	}

	// 3. Apply partial package fields
	if req.Title != nil {
		pkg.Title = *req.Title
	}
	if req.Image != nil {
		pkg.Image = req.Image
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	pkg.UpdatedAt = time.Now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		s.log.Error("Failed to update package", zap.Error(err), zap.String("package_id", id))
		return nil, fmt.Errorf("update package: %w", err)
	}

	// 4. Apply each tier entry against its sibling offer. An entry whose
	// tier has no sibling on this package is skipped without error.
	for _, entry := range req.Details {
		sibling, err := s.repo.Offer.FindByPackageAndType(ctx, packageID, entity.OfferType(entry.OfferType))
		if err != nil {
			s.log.Error("Failed to find sibling offer",
				zap.Error(err),
				zap.String("package_id", id),
				zap.String("offer_type", entry.OfferType))
			return nil, fmt.Errorf("find sibling offer: %w", err)
		}
		if sibling == nil {
			s.log.Debug("No sibling offer for tier, entry skipped",
				zap.String("package_id", id),
				zap.String("offer_type", entry.OfferType))
			continue
		}

		if entry.Title != nil {
			sibling.Title = *entry.Title
		}
		if entry.DeliveryTimeInDays != nil {
			sibling.DeliveryTimeInDays = *entry.DeliveryTimeInDays
		}
		if entry.Revisions != nil {
			sibling.Revisions = entry.Revisions
		}
		if entry.Price != nil {
			sibling.Price = *entry.Price
		}
		if entry.Features != nil {
			sibling.Features = entry.Features
		}

		if err := s.repo.Offer.Update(ctx, sibling); err != nil {
			s.log.Error("Failed to update offer",
				zap.Error(err),
				zap.String("offer_id", sibling.ID.String()))
			return nil, fmt.Errorf("update offer: %w", err)
		}
	}

	s.log.Info("Package updated", zap.String("package_id", id))

	return s.GetPackage(ctx, id)
}

func (s *offerService) DeletePackage(ctx context.Context, id string) error {
	packageID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid package ID format %s: %w", id, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to load package for delete", zap.Error(err), zap.String("package_id", id))
		return fmt.Errorf("get package: %w", err)
	}
	if pkg == nil {
		return fmt.Errorf("package %s not found", id)
	}

	return s.repo.Package.Delete(ctx, packageID)
}
