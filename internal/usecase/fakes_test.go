package usecase

import (
	"context"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hand-written fakes with overridable function fields. A nil field returns
// zero values, so each test only wires what it exercises.

type fakeUserRepo struct {
	CreateWithProfileFn func(ctx context.Context, user *entity.User, profile *entity.Profile) error
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn       func(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameFn    func(ctx context.Context, username string) (*entity.User, error)
	UpdateFn            func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	if f.CreateWithProfileFn != nil {
		return f.CreateWithProfileFn(ctx, user, profile)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.FindByUsernameFn != nil {
		return f.FindByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, user)
	}
	return nil
}

type fakeProfileRepo struct {
	FindByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	FindDetailFn   func(ctx context.Context, userID uuid.UUID) (*entity.ProfileDetail, error)
	ListDetailsFn  func(ctx context.Context, profileType entity.ProfileType) ([]*entity.ProfileDetail, error)
	CountByTypeFn  func(ctx context.Context, profileType entity.ProfileType) (int64, error)
	UpdateFn       func(ctx context.Context, profile *entity.Profile) error
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if f.FindByUserIDFn != nil {
		return f.FindByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindDetailByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProfileDetail, error) {
	if f.FindDetailFn != nil {
		return f.FindDetailFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListDetailsByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.ProfileDetail, error) {
	if f.ListDetailsFn != nil {
		return f.ListDetailsFn(ctx, profileType)
	}
	return nil, nil
}

func (f *fakeProfileRepo) CountByType(ctx context.Context, profileType entity.ProfileType) (int64, error) {
	if f.CountByTypeFn != nil {
		return f.CountByTypeFn(ctx, profileType)
	}
	return 0, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, profile)
	}
	return nil
}

type fakeSessionRepo struct {
	CreateFn           func(ctx context.Context, session *entity.Session) error
	FindValidSessionFn func(ctx context.Context, token string) (*entity.Session, error)
	RevokeFn           func(ctx context.Context, token string) error
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, session)
	}
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if f.FindValidSessionFn != nil {
		return f.FindValidSessionFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if f.RevokeFn != nil {
		return f.RevokeFn(ctx, token)
	}
	return nil
}

type fakePackageRepo struct {
	CreateWithOffersFn func(ctx context.Context, pkg *entity.OfferPackage, offers []*entity.Offer) error
	FindByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.OfferPackage, error)
	FindListingByIDFn  func(ctx context.Context, id uuid.UUID) (*entity.PackageListing, error)
	ListFn             func(ctx context.Context, filter repository.PackageFilter) ([]*entity.PackageListing, error)
	CountFn            func(ctx context.Context, filter repository.PackageFilter) (int64, error)
	UpdateFn           func(ctx context.Context, pkg *entity.OfferPackage) error
	DeleteFn           func(ctx context.Context, id uuid.UUID) error
}

func (f *fakePackageRepo) CreateWithOffers(ctx context.Context, pkg *entity.OfferPackage, offers []*entity.Offer) error {
	if f.CreateWithOffersFn != nil {
		return f.CreateWithOffersFn(ctx, pkg, offers)
	}
	return nil
}

func (f *fakePackageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OfferPackage, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePackageRepo) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.PackageListing, error) {
	if f.FindListingByIDFn != nil {
		return f.FindListingByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePackageRepo) List(ctx context.Context, filter repository.PackageFilter) ([]*entity.PackageListing, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakePackageRepo) Count(ctx context.Context, filter repository.PackageFilter) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakePackageRepo) Update(ctx context.Context, pkg *entity.OfferPackage) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, pkg)
	}
	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

type fakeOfferRepo struct {
	FindByIDFn             func(ctx context.Context, id uuid.UUID) (*entity.Offer, error)
	FindByIDWithOwnerFn    func(ctx context.Context, id uuid.UUID) (*entity.Offer, uuid.UUID, error)
	FindByPackageIDFn      func(ctx context.Context, packageID uuid.UUID) ([]*entity.Offer, error)
	FindByPackageIDsFn     func(ctx context.Context, packageIDs []uuid.UUID) (map[uuid.UUID][]*entity.Offer, error)
	FindByPackageAndTypeFn func(ctx context.Context, packageID uuid.UUID, offerType entity.OfferType) (*entity.Offer, error)
	UpdateFn               func(ctx context.Context, offer *entity.Offer) error
	CountAllFn             func(ctx context.Context) (int64, error)
}

func (f *fakeOfferRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeOfferRepo) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*entity.Offer, uuid.UUID, error) {
	if f.FindByIDWithOwnerFn != nil {
		return f.FindByIDWithOwnerFn(ctx, id)
	}
	return nil, uuid.Nil, nil
}

func (f *fakeOfferRepo) FindByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.Offer, error) {
	if f.FindByPackageIDFn != nil {
		return f.FindByPackageIDFn(ctx, packageID)
	}
	return nil, nil
}

func (f *fakeOfferRepo) FindByPackageIDs(ctx context.Context, packageIDs []uuid.UUID) (map[uuid.UUID][]*entity.Offer, error) {
	if f.FindByPackageIDsFn != nil {
		return f.FindByPackageIDsFn(ctx, packageIDs)
	}
	return map[uuid.UUID][]*entity.Offer{}, nil
}

func (f *fakeOfferRepo) FindByPackageAndType(ctx context.Context, packageID uuid.UUID, offerType entity.OfferType) (*entity.Offer, error) {
	if f.FindByPackageAndTypeFn != nil {
		return f.FindByPackageAndTypeFn(ctx, packageID, offerType)
	}
	return nil, nil
}

func (f *fakeOfferRepo) Update(ctx context.Context, offer *entity.Offer) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, offer)
	}
	return nil
}

func (f *fakeOfferRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

type fakeOrderRepo struct {
	CreateFn                       func(ctx context.Context, order *entity.Order) error
	FindByIDFn                     func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByParticipantFn            func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatusFn                 func(ctx context.Context, order *entity.Order) error
	DeleteFn                       func(ctx context.Context, id uuid.UUID) error
	CountByBusinessUserFn          func(ctx context.Context, businessUserID uuid.UUID) (int64, error)
	CountByBusinessUserAndStatusFn func(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, order)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if f.ListByParticipantFn != nil {
		return f.ListByParticipantFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, order *entity.Order) error {
	if f.UpdateStatusFn != nil {
		return f.UpdateStatusFn(ctx, order)
	}
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeOrderRepo) CountByBusinessUser(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	if f.CountByBusinessUserFn != nil {
		return f.CountByBusinessUserFn(ctx, businessUserID)
	}
	return 0, nil
}

func (f *fakeOrderRepo) CountByBusinessUserAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	if f.CountByBusinessUserAndStatusFn != nil {
		return f.CountByBusinessUserAndStatusFn(ctx, businessUserID, status)
	}
	return 0, nil
}

type fakeReviewRepo struct {
	CreateFn                    func(ctx context.Context, review *entity.Review) error
	FindByIDFn                  func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBusinessAndReviewerFn func(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error)
	ListFn                      func(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error)
	UpdateFn                    func(ctx context.Context, review *entity.Review) error
	DeleteFn                    func(ctx context.Context, id uuid.UUID) error
	CountAllFn                  func(ctx context.Context) (int64, error)
	AverageRatingFn             func(ctx context.Context) (*float64, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, review)
	}
	return nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByBusinessAndReviewer(ctx context.Context, businessUserID, reviewerID uuid.UUID) (*entity.Review, error) {
	if f.FindByBusinessAndReviewerFn != nil {
		return f.FindByBusinessAndReviewerFn(ctx, businessUserID, reviewerID)
	}
	return nil, nil
}

func (f *fakeReviewRepo) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, review)
	}
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeReviewRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeReviewRepo) AverageRating(ctx context.Context) (*float64, error) {
	if f.AverageRatingFn != nil {
		return f.AverageRatingFn(ctx)
	}
	return nil, nil
}

// newFakeRepository wires fakes into the aggregate the services consume.
func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeProfileRepo, *fakeSessionRepo, *fakePackageRepo, *fakeOfferRepo, *fakeOrderRepo, *fakeReviewRepo) {
	user := &fakeUserRepo{}
	profile := &fakeProfileRepo{}
	session := &fakeSessionRepo{}
	pkg := &fakePackageRepo{}
	offer := &fakeOfferRepo{}
	order := &fakeOrderRepo{}
	review := &fakeReviewRepo{}

	repo := &repository.Repository{
		User:    user,
		Profile: profile,
		Session: session,
		Package: pkg,
		Offer:   offer,
		Order:   order,
		Review:  review,
	}

	return repo, user, profile, session, pkg, offer, order, review
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
