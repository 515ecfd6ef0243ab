package entity

import "github.com/google/uuid"

type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "Active"
	AircraftStatusMaintenance AircraftStatus = "Maintenance"
	AircraftStatusRetired     AircraftStatus = "Retired"
)

type Aircraft struct {
	Base
	AirlineID          uuid.UUID      `db:"airline_id"`
	Model              string         `db:"model"`
	SeatCapacity       int            `db:"seat_capacity"`
	RegistrationNumber string         `db:"registration_number"` // globally unique, e.g. PK-LQJ
	Status             AircraftStatus `db:"status"`
}
