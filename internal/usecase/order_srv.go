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

type OrderService interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, id string, callerID uuid.UUID) (*response.OrderResponse, error)
	ListOrders(ctx context.Context, callerID uuid.UUID) ([]*response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, id string) error
	CountOrders(ctx context.Context, businessUserID string) (*response.OrderCountResponse, error)
	CountCompletedOrders(ctx context.Context, businessUserID string) (*response.CompletedOrderCountResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	offerID, err := uuid.Parse(req.OfferDetailID)
	if err != nil {
		return nil, utils.NewValidationError(map[string]string{
			"offer_detail_id": "Invalid offer ID format",
		})
	}

	// 2. Resolve the offer and its owning business user in one lookup
	offer, businessUserID, err := s.repo.Offer.FindByIDWithOwner(ctx, offerID)
	if err != nil {
		s.log.Error("Failed to resolve offer", zap.Error(err), zap.String("offer_id", req.OfferDetailID))
		return nil, fmt.Errorf("resolve offer: %w", err)
	}
	if offer == nil {
		return nil, fmt.Errorf("offer %s not found", req.OfferDetailID)
	}

	// 3. Snapshot the offer fields. Later edits to the offer never reach
	// this order.
	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OfferID:            &offer.ID,
		BusinessUserID:     businessUserID,
		CustomerUserID:     customerID,
		Title:              offer.Title,
		OfferType:          offer.OfferType,
		DeliveryTimeInDays: offer.DeliveryTimeInDays,
		Revisions:          offer.Revisions,
		Price:              offer.Price,
		Features:           offer.Features,
		Status:             entity.OrderStatusInProgress,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("business_user_id", businessUserID.String()))

	return response.OrderToResponse(order), nil
}

func (s *orderService) GetOrder(ctx context.Context, id string, callerID uuid.UUID) (*response.OrderResponse, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", id, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", id)
	}

	// Only the two participants can see an order
	if order.BusinessUserID != callerID && order.CustomerUserID != callerID {
		s.log.Warn("Order access denied",
			zap.String("order_id", id),
			zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("forbidden: not an order participant")
	}

	return response.OrderToResponse(order), nil
}

func (s *orderService) ListOrders(ctx context.Context, callerID uuid.UUID) ([]*response.OrderResponse, error) {
	orders, err := s.repo.Order.ListByParticipant(ctx, callerID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", callerID.String()))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	result := make([]*response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, response.OrderToResponse(order))
	}

	return result, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, callerID uuid.UUID, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", id, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to load order for update", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", id)
	}

	// 2. Only the business side moves an order forward
	if order.BusinessUserID != callerID {
		s.log.Warn("Order status update denied",
			zap.String("order_id", id),
			zap.String("caller_id", callerID.String()))
		return nil, fmt.Errorf("forbidden: only the business owner can update the order status")
	}

	// 3. Terminal states never change again
	if order.Status != entity.OrderStatusInProgress {
		return nil, utils.NewValidationError(map[string]string{
			"status": fmt.Sprintf("Order is already %s and cannot change status", order.Status),
		})
	}

	order.Status = entity.OrderStatus(req.Status)
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.UpdateStatus(ctx, order); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", id))
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", req.Status))

	return response.OrderToResponse(order), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order ID format %s: %w", id, err)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to load order for delete", zap.Error(err), zap.String("order_id", id))
		return fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s not found", id)
	}

	return s.repo.Order.Delete(ctx, orderID)
}

func (s *orderService) CountOrders(ctx context.Context, businessUserID string) (*response.OrderCountResponse, error) {
	userID, err := s.resolveBusinessUser(ctx, businessUserID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Order.CountByBusinessUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err), zap.String("business_user_id", businessUserID))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return &response.OrderCountResponse{OrderCount: count}, nil
}

func (s *orderService) CountCompletedOrders(ctx context.Context, businessUserID string) (*response.CompletedOrderCountResponse, error) {
	userID, err := s.resolveBusinessUser(ctx, businessUserID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Order.CountByBusinessUserAndStatus(ctx, userID, entity.OrderStatusCompleted)
	if err != nil {
		s.log.Error("Failed to count completed orders", zap.Error(err), zap.String("business_user_id", businessUserID))
		return nil, fmt.Errorf("count completed orders: %w", err)
	}

	return &response.CompletedOrderCountResponse{CompletedOrderCount: count}, nil
}

// resolveBusinessUser turns the path segment into a verified user ID. An
// unknown user is a not-found, never a zero count.
func (s *orderService) resolveBusinessUser(ctx context.Context, businessUserID string) (uuid.UUID, error) {
	userID, err := uuid.Parse(businessUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format %s: %w", businessUserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to resolve business user", zap.Error(err), zap.String("user_id", businessUserID))
		return uuid.Nil, fmt.Errorf("resolve business user: %w", err)
	}
	if user == nil {
		return uuid.Nil, fmt.Errorf("user %s not found", businessUserID)
	}

	return userID, nil
}
