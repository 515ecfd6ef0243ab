package usecase

import (
	"airline-ops/internal/data/repository"
	"airline-ops/pkg/database"
	"airline-ops/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Airline   AirlineService
	Aircraft  AircraftService
	Facility  FacilityService
	Flight    FlightService
	Passenger PassengerService
	Ticket    TicketService
	Note      NoteService
	Validator ValidatorService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(db, repo, log),
		User:      NewUserService(repo.User, log),
		Airline:   NewAirlineService(repo.Airline, log),
		Aircraft:  NewAircraftService(db, repo, log),
		Facility:  NewFacilityService(repo, log),
		Flight:    NewFlightService(db, repo, log),
		Passenger: NewPassengerService(db, repo, log),
		Ticket:    NewTicketService(db, repo, log),
		Note:      NewNoteService(repo.Note, config, log),
		Validator: NewValidatorService(repo.Audit, log),
	}
}
