package adaptor

import (
	"encoding/json"
	"net/http"

	"freelance-market/internal/dto/request"
	"freelance-market/internal/usecase"
	"freelance-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid order create body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateOrder(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Order created", result)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	result, err := h.service.GetOrder(r.Context(), id, callerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Order retrieved", result)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	result, err := h.service.ListOrders(r.Context(), callerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", result)
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing user context")
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid order update body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateOrderStatus(r.Context(), id, callerID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Order updated", result)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Order deleted", nil)
}

func (h *OrderHandler) CountOrders(w http.ResponseWriter, r *http.Request) {
	businessUserID := chi.URLParam(r, "business_user_id")

	result, err := h.service.CountOrders(r.Context(), businessUserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Order count retrieved", result)
}

func (h *OrderHandler) CountCompletedOrders(w http.ResponseWriter, r *http.Request) {
	businessUserID := chi.URLParam(r, "business_user_id")

	result, err := h.service.CountCompletedOrders(r.Context(), businessUserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Completed order count retrieved", result)
}
