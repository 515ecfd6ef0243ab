package request

type CreateAircraftRequest struct {
	AirlineID          string `json:"airline_id" validate:"required,uuid"`
	Model              string `json:"model" validate:"required,max=100"`
	SeatCapacity       int    `json:"seat_capacity" validate:"required,gt=0"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=20"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=Active Maintenance Retired"`
}

type UpdateAircraftRequest struct {
	Model              string `json:"model" validate:"required,max=100"`
	SeatCapacity       int    `json:"seat_capacity" validate:"required,gt=0"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=20"`
	Status             string `json:"status" validate:"required,oneof=Active Maintenance Retired"`
}

type BulkCreateAircraftRequest struct {
	Aircraft []CreateAircraftRequest `json:"aircraft" validate:"required,min=1,dive"`
}
