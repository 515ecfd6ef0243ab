package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type FlightResponse struct {
	ID          string              `json:"id"`
	AirlineID   string              `json:"airline_id"`
	AircraftID  string              `json:"aircraft_id"`
	GateID      string              `json:"gate_id"`
	Origin      string              `json:"origin"`
	Destination string              `json:"destination"`
	Departure   time.Time           `json:"departure"`
	Arrival     time.Time           `json:"arrival"`
	Status      entity.FlightStatus `json:"status"`
	BookedSeats int                 `json:"booked_seats"`
	Capacity    int                 `json:"capacity"`
	CreatedAt   time.Time           `json:"created_at"`
}

func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:          flight.ID.String(),
		AirlineID:   flight.AirlineID.String(),
		AircraftID:  flight.AircraftID.String(),
		GateID:      flight.GateID.String(),
		Origin:      flight.Origin,
		Destination: flight.Destination,
		Departure:   flight.Departure,
		Arrival:     flight.Arrival,
		Status:      flight.Status,
		BookedSeats: flight.BookedSeats,
		Capacity:    flight.Capacity,
		CreatedAt:   flight.CreatedAt,
	}
}
