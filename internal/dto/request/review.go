package request

type CreateReviewRequest struct {
	BusinessUserID string `json:"business_user" validate:"required,uuid4"`
	Rating         int    `json:"rating" validate:"required,min=1,max=5"`
	Description    string `json:"description" validate:"required,max=255"`
}

type UpdateReviewRequest struct {
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}
