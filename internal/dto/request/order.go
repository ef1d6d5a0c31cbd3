package request

type CreateOrderRequest struct {
	OfferDetailID string `json:"offer_detail_id" validate:"required,uuid4"`
}

// UpdateOrderRequest only ever carries the status. Transitions are one-way:
// in_progress is the initial state and can never be written back.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
