package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// OfferPackage bundles exactly three offers (one per tier) owned by a
// business user. The three-offer invariant is enforced on create.
type OfferPackage struct {
	BaseNoDelete
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Image       *string   `db:"image"`
	Description string    `db:"description"`
}

// Offer is one pricing tier inside a package. Revisions nil means
// unlimited revisions.
type Offer struct {
	ID                 uuid.UUID       `db:"id"`
	PackageID          uuid.UUID       `db:"package_id"`
	Title              string          `db:"title"`
	OfferType          OfferType       `db:"offer_type"`
	DeliveryTimeInDays int             `db:"delivery_time_in_days"`
	Revisions          *int            `db:"revisions"`
	Price              decimal.Decimal `db:"price"`
	Features           []string        `db:"features"`
}

// PackageListing is a package row annotated with the aggregates the
// listing engine computes and the owner's user fields. MinPrice and
// MinDeliveryTime are nil when the package has no offers.
type PackageListing struct {
	OfferPackage
	MinPrice        decimal.NullDecimal `db:"min_price"`
	MinDeliveryTime *int                `db:"min_delivery_time"`
	Username        string              `db:"username"`
	FirstName       string              `db:"first_name"`
	LastName        string              `db:"last_name"`
}
