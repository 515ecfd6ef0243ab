package repository

import (
	"errors"

	"airline-ops/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by updates and deletes that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Airline   AirlineRepository
	Aircraft  AircraftRepository
	Terminal  TerminalRepository
	Gate      GateRepository
	Flight    FlightRepository
	Passenger PassengerRepository
	Ticket    TicketRepository
	User      UserRepository
	Note      NoteRepository
	Audit     AuditRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Airline:   NewAirlineRepository(db, log),
		Aircraft:  NewAircraftRepository(db, log),
		Terminal:  NewTerminalRepository(db, log),
		Gate:      NewGateRepository(db, log),
		Flight:    NewFlightRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
		User:      NewUserRepository(db, log),
		Note:      NewNoteRepository(db, log),
		Audit:     NewAuditRepository(db, log),
	}
}
