package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ops/internal/data/entity"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"
	"airline-ops/pkg/database"
	"airline-ops/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightService interface {
	CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error)
	GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error)
	GetAllFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error)
	UpdateFlight(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

type flightService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

// CreateFlight validates the airline/aircraft/gate references and the
// schedule inside one serializable transaction, so two concurrent creates
// for the same aircraft or gate cannot both slip past the conflict reads.
func (s *flightService) CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	airlineID, err := parseID("airline", req.AirlineID)
	if err != nil {
		return nil, err
	}
	aircraftID, err := parseID("aircraft", req.AircraftID)
	if err != nil {
		return nil, err
	}
	gateID, err := parseID("gate", req.GateID)
	if err != nil {
		return nil, err
	}

	if !req.Arrival.After(req.Departure) {
		return nil, fmt.Errorf("departure %s, arrival %s: %w",
			req.Departure.Format(time.RFC3339), req.Arrival.Format(time.RFC3339), ErrInvalidSchedule)
	}

	status := entity.FlightStatusOnTime
	if req.Status != "" {
		status = entity.FlightStatus(req.Status)
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AirlineID:   airlineID,
		AircraftID:  aircraftID,
		GateID:      gateID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Departure:   req.Departure,
		Arrival:     req.Arrival,
		Status:      status,
		BookedSeats: 0,
		Capacity:    entity.DefaultFlightCapacity,
	}

	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		flights := s.repo.Flight.WithTx(tx)

		airline, err := s.repo.Airline.WithTx(tx).FindByID(ctx, airlineID)
		if err != nil {
			return err
		}
		if airline == nil {
			return fmt.Errorf("airline %s: %w", airlineID.String(), ErrNotFound)
		}

		aircraft, err := s.repo.Aircraft.WithTx(tx).FindByID(ctx, aircraftID)
		if err != nil {
			return err
		}
		if aircraft == nil {
			return fmt.Errorf("aircraft %s: %w", aircraftID.String(), ErrNotFound)
		}

		gate, err := s.repo.Gate.WithTx(tx).FindByID(ctx, gateID)
		if err != nil {
			return err
		}
		if gate == nil {
			return fmt.Errorf("gate %s: %w", gateID.String(), ErrNotFound)
		}

		conflict, err := flights.FindAircraftConflict(ctx, aircraftID, req.Departure, req.Arrival)
		if err != nil {
			return err
		}
		if conflict != nil {
			return fmt.Errorf("conflicts with flight %s: %w", conflict.ID.String(), ErrAircraftConflict)
		}

		conflict, err = flights.FindGateConflict(ctx, gateID, req.Departure, req.Arrival)
		if err != nil {
			return err
		}
		if conflict != nil {
			return fmt.Errorf("conflicts with flight %s: %w", conflict.ID.String(), ErrGateConflict)
		}

		return flights.Create(ctx, flight)
	})
	if err != nil {
		s.log.Warn("Create flight failed",
			zap.Error(err),
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
		)
		return nil, err
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("route", req.Origin+"-"+req.Destination),
		zap.Time("departure", req.Departure),
	)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error) {
	id, err := parseID("flight", flightID)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) GetAllFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error) {
	flights, err := s.repo.Flight.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get flights: %w", err)
	}

	total, err := s.repo.Flight.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}

	flightResponses := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		flightResponses[i] = response.FlightToResponse(flight)
	}

	return response.NewPaginatedResponse(flightResponses, req.Page, req.PerPage, total), nil
}

// UpdateFlight is plain CRUD per the original system: status, route and
// capacity edits do not re-run the scheduling conflict checks.
func (s *flightService) UpdateFlight(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newFieldValidationError(errs)
	}

	id, err := parseID("flight", flightID)
	if err != nil {
		return nil, err
	}

	if !req.Arrival.After(req.Departure) {
		return nil, fmt.Errorf("departure %s, arrival %s: %w",
			req.Departure.Format(time.RFC3339), req.Arrival.Format(time.RFC3339), ErrInvalidSchedule)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
	}

	flight.Origin = req.Origin
	flight.Destination = req.Destination
	flight.Departure = req.Departure
	flight.Arrival = req.Arrival
	flight.Status = entity.FlightStatus(req.Status)
	if req.Capacity > 0 {
		flight.Capacity = req.Capacity
	}
	flight.UpdatedAt = time.Now()

	if err := s.repo.Flight.Update(ctx, flight); err != nil {
		return nil, fmt.Errorf("update flight: %w", err)
	}

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := parseID("flight", flightID)
	if err != nil {
		return err
	}

	if err := s.repo.Flight.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
		}
		return fmt.Errorf("delete flight: %w", err)
	}

	s.log.Info("Flight deleted", zap.String("flight_id", flightID))
	return nil
}
