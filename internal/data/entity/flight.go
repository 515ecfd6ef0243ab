package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "On Time"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

// DefaultFlightCapacity is used when a flight's aircraft reference cannot
// be resolved to a seat capacity.
const DefaultFlightCapacity = 180

type Flight struct {
	Base
	AirlineID   uuid.UUID    `db:"airline_id"`
	AircraftID  uuid.UUID    `db:"aircraft_id"`
	GateID      uuid.UUID    `db:"gate_id"`
	Origin      string       `db:"origin"`
	Destination string       `db:"destination"`
	Departure   time.Time    `db:"departure"`
	Arrival     time.Time    `db:"arrival"` // invariant: strictly after Departure
	Status      FlightStatus `db:"status"`
	BookedSeats int          `db:"booked_seats"` // cached aggregate of tickets, audited by the validator
	Capacity    int          `db:"capacity"`     // informational fallback only
}

// OverlapsWindow reports whether the flight's [Departure, Arrival] window
// overlaps [departure, arrival]. Boundaries are inclusive: two windows
// sharing an exact instant overlap, so back-to-back flights conflict. The
// conflict queries in the flight repository apply the same comparison in SQL.
func (f *Flight) OverlapsWindow(departure, arrival time.Time) bool {
	return !f.Departure.After(arrival) && !departure.After(f.Arrival)
}
