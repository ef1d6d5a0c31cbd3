package request

type RegisterRequest struct {
	Username         string `json:"username" validate:"required,min=3,max=150"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8,max=100"`
	RepeatedPassword string `json:"repeated_password" validate:"required,eqfield=Password"`
	Type             string `json:"type" validate:"required,oneof=customer business"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
