package usecase

import (
	"context"
	"testing"

	"freelance-market/internal/data/entity"
	"freelance-market/internal/dto/request"
	"freelance-market/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_SnapshotsOfferFields(t *testing.T) {
	repo, _, _, _, _, offerRepo, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	customerID := uuid.New()
	businessID := uuid.New()
	offerID := uuid.New()
	revisions := 2

	offerRepo.FindByIDWithOwnerFn = func(ctx context.Context, id uuid.UUID) (*entity.Offer, uuid.UUID, error) {
		return &entity.Offer{
			ID:                 offerID,
			PackageID:          uuid.New(),
			Title:              "Standard logo",
			OfferType:          entity.OfferTypeStandard,
			DeliveryTimeInDays: 5,
			Revisions:          &revisions,
			Price:              decimal.NewFromInt(100),
			Features:           []string{"Vector file", "Source file"},
		}, businessID, nil
	}

	var created *entity.Order
	orderRepo.CreateFn = func(ctx context.Context, order *entity.Order) error {
		created = order
		return nil
	}

	result, err := svc.CreateOrder(context.Background(), customerID, &request.CreateOrderRequest{
		OfferDetailID: offerID.String(),
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, businessID, created.BusinessUserID)
	assert.Equal(t, customerID, created.CustomerUserID)
	assert.Equal(t, "Standard logo", created.Title)
	assert.Equal(t, entity.OfferTypeStandard, created.OfferType)
	assert.Equal(t, 5, created.DeliveryTimeInDays)
	assert.True(t, created.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, []string{"Vector file", "Source file"}, created.Features)
	assert.Equal(t, entity.OrderStatusInProgress, created.Status)
	require.NotNil(t, created.OfferID)
	assert.Equal(t, offerID, *created.OfferID)

	assert.Equal(t, "in_progress", result.Status)
}

func TestCreateOrder_UnknownOfferIsNotFound(t *testing.T) {
	repo, _, _, _, _, _, _, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	_, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{
		OfferDetailID: uuid.New().String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateOrderStatus_OnlyBusinessOwner(t *testing.T) {
	repo, _, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	businessID := uuid.New()
	orderID := uuid.New()
	orderRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return &entity.Order{
			BaseNoDelete:   entity.BaseNoDelete{ID: orderID},
			BusinessUserID: businessID,
			CustomerUserID: uuid.New(),
			Status:         entity.OrderStatusInProgress,
		}, nil
	}

	_, err := svc.UpdateOrderStatus(context.Background(), orderID.String(), uuid.New(), &request.UpdateOrderRequest{
		Status: "completed",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestUpdateOrderStatus_TerminalStateIsFinal(t *testing.T) {
	repo, _, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	businessID := uuid.New()
	orderID := uuid.New()
	orderRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return &entity.Order{
			BaseNoDelete:   entity.BaseNoDelete{ID: orderID},
			BusinessUserID: businessID,
			Status:         entity.OrderStatusCancelled,
		}, nil
	}

	written := false
	orderRepo.UpdateStatusFn = func(ctx context.Context, order *entity.Order) error {
		written = true
		return nil
	}

	_, err := svc.UpdateOrderStatus(context.Background(), orderID.String(), businessID, &request.UpdateOrderRequest{
		Status: "completed",
	})
	require.Error(t, err)

	var validationErr *utils.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.False(t, written)
}

func TestUpdateOrderStatus_InProgressToCompleted(t *testing.T) {
	repo, _, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	businessID := uuid.New()
	orderID := uuid.New()
	orderRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return &entity.Order{
			BaseNoDelete:   entity.BaseNoDelete{ID: orderID},
			BusinessUserID: businessID,
			Status:         entity.OrderStatusInProgress,
		}, nil
	}

	var written *entity.Order
	orderRepo.UpdateStatusFn = func(ctx context.Context, order *entity.Order) error {
		written = order
		return nil
	}

	result, err := svc.UpdateOrderStatus(context.Background(), orderID.String(), businessID, &request.UpdateOrderRequest{
		Status: "completed",
	})
	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, entity.OrderStatusCompleted, written.Status)
	assert.Equal(t, "completed", result.Status)
}

func TestGetOrder_ParticipantsOnly(t *testing.T) {
	repo, _, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	businessID := uuid.New()
	customerID := uuid.New()
	orderID := uuid.New()
	orderRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		return &entity.Order{
			BaseNoDelete:   entity.BaseNoDelete{ID: orderID},
			BusinessUserID: businessID,
			CustomerUserID: customerID,
			Status:         entity.OrderStatusInProgress,
		}, nil
	}

	_, err := svc.GetOrder(context.Background(), orderID.String(), customerID)
	assert.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), orderID.String(), businessID)
	assert.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), orderID.String(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestCountOrders_UnknownUserIsNotFound(t *testing.T) {
	repo, _, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	counted := false
	orderRepo.CountByBusinessUserFn = func(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
		counted = true
		return 0, nil
	}

	_, err := svc.CountOrders(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.False(t, counted)
}

func TestCountCompletedOrders_FiltersByStatus(t *testing.T) {
	repo, userRepo, _, _, _, _, orderRepo, _ := newFakeRepository()
	svc := NewOrderService(repo, testLogger())

	businessID := uuid.New()
	userRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{BaseNoDelete: entity.BaseNoDelete{ID: businessID}}, nil
	}

	var askedStatus entity.OrderStatus
	orderRepo.CountByBusinessUserAndStatusFn = func(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
		askedStatus = status
		return 4, nil
	}

	result, err := svc.CountCompletedOrders(context.Background(), businessID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, askedStatus)
	assert.Equal(t, int64(4), result.CompletedOrderCount)
}
