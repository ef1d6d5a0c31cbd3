package response

import (
	"time"

	"freelance-market/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	BusinessUser string    `json:"business_user"`
	Reviewer     string    `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ReviewToResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID.String(),
		BusinessUser: review.BusinessUserID.String(),
		Reviewer:     review.ReviewerID.String(),
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}
