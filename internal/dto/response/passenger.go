package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type PassengerResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	PassportNumber *string   `json:"passport_number,omitempty"`
	IdentityNumber *string   `json:"identity_number,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Nationality    string    `json:"nationality"`
	CreatedAt      time.Time `json:"created_at"`
}

func PassengerToResponse(passenger *entity.Passenger) PassengerResponse {
	return PassengerResponse{
		ID:             passenger.ID.String(),
		FullName:       passenger.FullName,
		PassportNumber: passenger.PassportNumber,
		IdentityNumber: passenger.IdentityNumber,
		Phone:          passenger.Phone,
		Email:          passenger.Email,
		Nationality:    passenger.Nationality,
		CreatedAt:      passenger.CreatedAt,
	}
}
