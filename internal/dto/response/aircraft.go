package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type AircraftResponse struct {
	ID                 string                `json:"id"`
	AirlineID          string                `json:"airline_id"`
	Model              string                `json:"model"`
	SeatCapacity       int                   `json:"seat_capacity"`
	RegistrationNumber string                `json:"registration_number"`
	Status             entity.AircraftStatus `json:"status"`
	CreatedAt          time.Time             `json:"created_at"`
}

func AircraftToResponse(aircraft *entity.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:                 aircraft.ID.String(),
		AirlineID:          aircraft.AirlineID.String(),
		Model:              aircraft.Model,
		SeatCapacity:       aircraft.SeatCapacity,
		RegistrationNumber: aircraft.RegistrationNumber,
		Status:             aircraft.Status,
		CreatedAt:          aircraft.CreatedAt,
	}
}
