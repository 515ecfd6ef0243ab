package request

import "time"

type CreateFlightRequest struct {
	AirlineID   string    `json:"airline_id" validate:"required,uuid"`
	AircraftID  string    `json:"aircraft_id" validate:"required,uuid"`
	GateID      string    `json:"gate_id" validate:"required,uuid"`
	Origin      string    `json:"origin" validate:"required,max=100"`
	Destination string    `json:"destination" validate:"required,max=100"`
	Departure   time.Time `json:"departure" validate:"required"`
	Arrival     time.Time `json:"arrival" validate:"required"`
	Status      string    `json:"status,omitempty" validate:"omitempty,oneof='On Time' Delayed Cancelled"`
}

type UpdateFlightRequest struct {
	Origin      string    `json:"origin" validate:"required,max=100"`
	Destination string    `json:"destination" validate:"required,max=100"`
	Departure   time.Time `json:"departure" validate:"required"`
	Arrival     time.Time `json:"arrival" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof='On Time' Delayed Cancelled"`
	Capacity    int       `json:"capacity" validate:"gte=0"`
}
