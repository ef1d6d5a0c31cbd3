package response

import (
	"time"

	"freelance-market/internal/data/entity"
)

type ProfileResponse struct {
	User         string    `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	File         *string   `json:"file"`
	CreatedAt    time.Time `json:"created_at"`
}

func ProfileToResponse(detail *entity.ProfileDetail) *ProfileResponse {
	return &ProfileResponse{
		User:         detail.UserID.String(),
		Username:     detail.Username,
		FirstName:    detail.FirstName,
		LastName:     detail.LastName,
		Email:        detail.Email,
		Type:         string(detail.Type),
		Location:     detail.Location,
		Tel:          detail.Tel,
		Description:  detail.Description,
		WorkingHours: detail.WorkingHours,
		File:         detail.File,
		CreatedAt:    detail.CreatedAt,
	}
}

// CustomerProfileResponse is the slimmer shape customer listings use; the
// business-only contact fields stay out of it.
type CustomerProfileResponse struct {
	User      string    `json:"user"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	File      *string   `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

func CustomerProfileToResponse(detail *entity.ProfileDetail) *CustomerProfileResponse {
	return &CustomerProfileResponse{
		User:      detail.UserID.String(),
		Username:  detail.Username,
		FirstName: detail.FirstName,
		LastName:  detail.LastName,
		Email:     detail.Email,
		Type:      string(detail.Type),
		File:      detail.File,
		CreatedAt: detail.CreatedAt,
	}
}
