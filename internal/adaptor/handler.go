package adaptor

import (
	"airline-ops/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Airline   *AirlineHandler
	Aircraft  *AircraftHandler
	Facility  *FacilityHandler
	Flight    *FlightHandler
	Passenger *PassengerHandler
	Ticket    *TicketHandler
	Note      *NoteHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Airline:   NewAirlineHandler(service.Airline, log),
		Aircraft:  NewAircraftHandler(service.Aircraft, log),
		Facility:  NewFacilityHandler(service.Facility, log),
		Flight:    NewFlightHandler(service.Flight, log),
		Passenger: NewPassengerHandler(service.Passenger, log),
		Ticket:    NewTicketHandler(service.Ticket, log),
		Note:      NewNoteHandler(service.Note, log),
		Health:    NewHealthHandler(service.Validator, log),
	}
}
