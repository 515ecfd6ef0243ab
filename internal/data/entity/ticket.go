package entity

import "github.com/google/uuid"

type TicketClass string

const (
	TicketClassEconomy  TicketClass = "Economy"
	TicketClassBusiness TicketClass = "Business"
	TicketClassFirst    TicketClass = "First"
)

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "Confirmed"
	TicketStatusCheckedIn TicketStatus = "Checked In"
	TicketStatusCancelled TicketStatus = "Cancelled"
)

type Ticket struct {
	Base
	FlightID    uuid.UUID    `db:"flight_id"`
	PassengerID uuid.UUID    `db:"passenger_id"`
	SeatNumber  string       `db:"seat_number"` // unique per flight
	Class       TicketClass  `db:"class"`
	Price       float64      `db:"price"`
	Status      TicketStatus `db:"status"`
}
