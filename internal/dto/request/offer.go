package request

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferEntry is one tier payload inside a package create request.
type OfferEntry struct {
	Title              string          `json:"title" validate:"required,max=255"`
	OfferType          string          `json:"offer_type" validate:"required"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days" validate:"required,gt=0"`
	Revisions          *int            `json:"revisions,omitempty"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
}

type CreatePackageRequest struct {
	Title       string       `json:"title" validate:"required,max=255"`
	Image       *string      `json:"image,omitempty"`
	Description string       `json:"description" validate:"max=255"`
	Details     []OfferEntry `json:"details"`
}

// UpdateOfferEntry carries a partial update for one tier, matched to the
// existing sibling offer by offer_type.
type UpdateOfferEntry struct {
	OfferType          string           `json:"offer_type" validate:"required,oneof=basic standard premium"`
	Title              *string          `json:"title,omitempty" validate:"omitempty,max=255"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days,omitempty" validate:"omitempty,gt=0"`
	Revisions          *int             `json:"revisions,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Features           []string         `json:"features,omitempty"`
}

type UpdatePackageRequest struct {
	Title       *string            `json:"title,omitempty" validate:"omitempty,max=255"`
	Image       *string            `json:"image,omitempty"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=255"`
	Details     []UpdateOfferEntry `json:"details,omitempty"`
}

const (
	DefaultPageSize = 6
	MaxPageSize     = 10
)

// OfferListParams holds the typed listing query parameters. Nil pointers
// mean the parameter was not provided, which is not the same as zero.
type OfferListParams struct {
	CreatorID       *uuid.UUID
	MinPrice        *float64
	MaxDeliveryTime *int
	Ordering        string
	Search          *string
	Page            int
	PageSize        int
}

// ParseOfferListParams type-casts the raw query string. Every failing cast
// is reported, keyed by parameter name, so the caller gets one complete
// 400 instead of the first failure.
func ParseOfferListParams(query url.Values) (*OfferListParams, map[string]string) {
	params := &OfferListParams{
		Page:     1,
		PageSize: DefaultPageSize,
	}
	errors := make(map[string]string)

	if raw := query.Get("creator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errors["creator_id"] = fmt.Sprintf("Invalid value '%s'. Expected a user ID.", raw)
		} else {
			params.CreatorID = &id
		}
	}

	if raw := query.Get("min_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errors["min_price"] = fmt.Sprintf("Invalid value '%s'. Expected a number.", raw)
		} else {
			params.MinPrice = &value
		}
	}

	if raw := query.Get("max_delivery_time"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			errors["max_delivery_time"] = fmt.Sprintf("Invalid value '%s'. Expected an integer.", raw)
		} else {
			params.MaxDeliveryTime = &value
		}
	}

	// Unrecognized ordering keys are not an error, they leave the default
	// order untouched.
	params.Ordering = query.Get("ordering")

	if raw := query.Get("search"); raw != "" {
		params.Search = &raw
	}

	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			errors["page"] = fmt.Sprintf("Invalid value '%s'. Expected an integer.", raw)
		} else if value > 0 {
			params.Page = value
		}
	}

	if raw := query.Get("page_size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			errors["page_size"] = fmt.Sprintf("Invalid value '%s'. Expected an integer.", raw)
		} else if value > 0 {
			params.PageSize = value
			if params.PageSize > MaxPageSize {
				params.PageSize = MaxPageSize
			}
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}

	return params, nil
}
