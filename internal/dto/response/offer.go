package response

import (
	"encoding/json"
	"time"

	"freelance-market/internal/data/entity"
	"freelance-market/pkg/utils"
)

// OfferResponse is the full single-offer shape.
type OfferResponse struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	OfferType          string      `json:"offer_type"`
	DeliveryTimeInDays int         `json:"delivery_time_in_days"`
	Revisions          *int        `json:"revisions"`
	Price              json.Number `json:"price"`
	Features           []string    `json:"features"`
}

func OfferToResponse(offer *entity.Offer) *OfferResponse {
	return &OfferResponse{
		ID:                 offer.ID.String(),
		Title:              offer.Title,
		OfferType:          string(offer.OfferType),
		DeliveryTimeInDays: offer.DeliveryTimeInDays,
		Revisions:          offer.Revisions,
		Price:              utils.FormatPrice(offer.Price),
		Features:           offer.Features,
	}
}

// OfferRef is the compact per-tier reference embedded in package listings.
type OfferRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func OfferToRef(offer *entity.Offer) OfferRef {
	return OfferRef{
		ID:  offer.ID.String(),
		URL: "/offerdetails/" + offer.ID.String(),
	}
}

type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// PackageResponse is the annotated package shape shared by list and detail
// views. MinPrice and MinDeliveryTime are null for a package without
// offers.
type PackageResponse struct {
	ID              string       `json:"id"`
	User            string       `json:"user"`
	Title           string       `json:"title"`
	Image           *string      `json:"image"`
	Description     string       `json:"description"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	MinPrice        *json.Number `json:"min_price"`
	MinDeliveryTime *int         `json:"min_delivery_time"`
	Details         []OfferRef   `json:"details"`
	UserDetails     *UserDetails `json:"user_details,omitempty"`
}

func PackageToResponse(listing *entity.PackageListing, offers []*entity.Offer, withUserDetails bool) *PackageResponse {
	details := make([]OfferRef, 0, len(offers))
	for _, offer := range offers {
		details = append(details, OfferToRef(offer))
	}

	resp := &PackageResponse{
		ID:              listing.ID.String(),
		User:            listing.UserID.String(),
		Title:           listing.Title,
		Image:           listing.Image,
		Description:     listing.Description,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
		MinPrice:        utils.FormatNullPrice(listing.MinPrice),
		MinDeliveryTime: listing.MinDeliveryTime,
		Details:         details,
	}

	if withUserDetails {
		resp.UserDetails = &UserDetails{
			FirstName: listing.FirstName,
			LastName:  listing.LastName,
			Username:  listing.Username,
		}
	}

	return resp
}
