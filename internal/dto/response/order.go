package response

import (
	"encoding/json"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/utils"
)

type OrderResponse struct {
	ID                 string      `json:"id"`
	BusinessUser       string      `json:"business_user"`
	CustomerUser       string      `json:"customer_user"`
	Title              string      `json:"title"`
	OfferType          string      `json:"offer_type"`
	DeliveryTimeInDays int         `json:"delivery_time_in_days"`
	Revisions          *int        `json:"revisions"`
	Price              json.Number `json:"price"`
	Features           []string    `json:"features"`
	Status             string      `json:"status"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func OrderToResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:                 order.ID.String(),
		BusinessUser:       order.BusinessUserID.String(),
		CustomerUser:       order.CustomerUserID.String(),
		Title:              order.Title,
		OfferType:          string(order.OfferType),
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Revisions:          order.Revisions,
		Price:              utils.FormatPrice(order.Price),
		Features:           order.Features,
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

type OrderCountResponse struct {
	OrderCount int64 `json:"order_count"`
}

type CompletedOrderCountResponse struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}
