package request

type RegisterRequest struct {
	Username       string  `json:"username" validate:"required,min=3,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	IdentityNumber *string `json:"identity_number,omitempty" validate:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
	Role           *string `json:"role,omitempty" validate:"omitempty,oneof=passenger admin"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
