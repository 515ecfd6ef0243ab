package request

type CreatePassengerRequest struct {
	FullName       string  `json:"full_name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,max=20"`
	IdentityNumber *string `json:"identity_number,omitempty" validate:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
}

type UpdatePassengerRequest struct {
	FullName       string  `json:"full_name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	PassportNumber *string `json:"passport_number,omitempty" validate:"omitempty,max=20"`
	IdentityNumber *string `json:"identity_number,omitempty" validate:"omitempty,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Nationality    *string `json:"nationality,omitempty" validate:"omitempty,max=100"`
}

type BulkCreatePassengersRequest struct {
	Passengers []CreatePassengerRequest `json:"passengers" validate:"required,min=1,dive"`
}
