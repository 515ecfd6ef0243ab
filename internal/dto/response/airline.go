package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type AirlineResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IataCode    string    `json:"iata_code"`
	Country     string    `json:"country"`
	FleetSize   int       `json:"fleet_size"`
	FoundedYear int       `json:"founded_year"`
	CreatedAt   time.Time `json:"created_at"`
}

func AirlineToResponse(airline *entity.Airline) AirlineResponse {
	return AirlineResponse{
		ID:          airline.ID.String(),
		Name:        airline.Name,
		IataCode:    airline.IataCode,
		Country:     airline.Country,
		FleetSize:   airline.FleetSize,
		FoundedYear: airline.FoundedYear,
		CreatedAt:   airline.CreatedAt,
	}
}
