package request

// UpdateProfileRequest is a partial update; nil fields stay untouched.
// The profile type is immutable and deliberately absent.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Tel          *string `json:"tel,omitempty" validate:"omitempty,max=20"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=255"`
	WorkingHours *string `json:"working_hours,omitempty" validate:"omitempty,max=20"`
}
