package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order freezes the fields of one offer at purchase time. The snapshot
// columns are copied on create and never re-synced from the source offer.
// OfferID is kept for provenance only.
type Order struct {
	BaseNoDelete
	OfferID            *uuid.UUID      `db:"offer_id"`
	BusinessUserID     uuid.UUID       `db:"business_user_id"`
	CustomerUserID     uuid.UUID       `db:"customer_user_id"`
	Title              string          `db:"title"`
	OfferType          OfferType       `db:"offer_type"`
	DeliveryTimeInDays int             `db:"delivery_time_in_days"`
	Revisions          *int            `db:"revisions"`
	Price              decimal.Decimal `db:"price"`
	Features           []string        `db:"features"`
	Status             OrderStatus     `db:"status"`
}
