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

type TicketService interface {
	CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) (*response.DeleteTicketResponse, error)
	GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error)
	GetAllTickets(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
}

type ticketService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

// effectiveCapacity is the aircraft's seat capacity when the flight's
// aircraft reference resolves, else the default of 180. The flight row's own
// capacity column is a fallback hint, never the limit.
func effectiveCapacity(aircraft *entity.Aircraft) int {
	if aircraft != nil && aircraft.SeatCapacity > 0 {
		return aircraft.SeatCapacity
	}
	return entity.DefaultFlightCapacity
}

// CreateTicket books a seat and bumps the flight's booked_seats counter as
// one atomic unit. Capacity is enforced against a fresh ticket count inside
// the transaction; booked_seats is only the cached copy kept for readers.
func (s *ticketService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	flightID, err := parseID("flight", req.FlightID)
	if err != nil {
		return nil, err
	}
	passengerID, err := parseID("passenger", req.PassengerID)
	if err != nil {
		return nil, err
	}

	class := entity.TicketClassEconomy
	if req.Class != "" {
		class = entity.TicketClass(req.Class)
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FlightID:    flightID,
		PassengerID: passengerID,
		SeatNumber:  req.SeatNumber,
		Class:       class,
		Price:       req.Price,
		Status:      entity.TicketStatusConfirmed,
	}

	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		flights := s.repo.Flight.WithTx(tx)
		tickets := s.repo.Ticket.WithTx(tx)

		flight, err := flights.FindByID(ctx, flightID)
		if err != nil {
			return err
		}
		if flight == nil {
			return fmt.Errorf("flight %s: %w", flightID.String(), ErrNotFound)
		}

		passenger, err := s.repo.Passenger.WithTx(tx).FindByID(ctx, passengerID)
		if err != nil {
			return err
		}
		if passenger == nil {
			return fmt.Errorf("passenger %s: %w", passengerID.String(), ErrNotFound)
		}

		taken, err := tickets.FindBySeat(ctx, flightID, req.SeatNumber)
		if err != nil {
			return err
		}
		if taken != nil {
			return fmt.Errorf("seat %s: %w", req.SeatNumber, ErrSeatTaken)
		}

		aircraft, err := s.repo.Aircraft.WithTx(tx).FindByID(ctx, flight.AircraftID)
		if err != nil {
			return err
		}

		count, err := tickets.CountByFlightID(ctx, flightID)
		if err != nil {
			return err
		}
		if count >= int64(effectiveCapacity(aircraft)) {
			return fmt.Errorf("flight %s: %w", flightID.String(), ErrFlightFull)
		}

		if err := tickets.Create(ctx, ticket); err != nil {
			return mapUniqueViolation(err)
		}

		return flights.AddBookedSeats(ctx, flightID, 1)
	})
	if err != nil {
		s.log.Warn("Create ticket failed",
			zap.Error(err),
			zap.String("flight_id", req.FlightID),
			zap.String("seat_number", req.SeatNumber),
		)
		return nil, err
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("flight_id", flightID.String()),
		zap.String("seat_number", req.SeatNumber),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// DeleteTicket is the exact inverse of CreateTicket: the ticket row and the
// booked_seats decrement commit or roll back together.
func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) (*response.DeleteTicketResponse, error) {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return nil, err
	}

	var resp *response.DeleteTicketResponse
	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		tickets := s.repo.Ticket.WithTx(tx)

		ticket, err := tickets.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if ticket == nil {
			return fmt.Errorf("ticket %s: %w", id.String(), ErrNotFound)
		}

		if err := tickets.Delete(ctx, id); err != nil {
			return err
		}

		if err := s.repo.Flight.WithTx(tx).AddBookedSeats(ctx, ticket.FlightID, -1); err != nil {
			return err
		}

		resp = &response.DeleteTicketResponse{
			TicketID:   id.String(),
			FlightID:   ticket.FlightID.String(),
			SeatNumber: ticket.SeatNumber,
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Delete ticket failed", zap.Error(err), zap.String("ticket_id", ticketID))
		return nil, err
	}

	s.log.Info("Ticket deleted",
		zap.String("ticket_id", id.String()),
		zap.String("flight_id", resp.FlightID),
		zap.String("seat_number", resp.SeatNumber),
	)

	return resp, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return nil, err
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) GetAllTickets(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	tickets, err := s.repo.Ticket.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get tickets: %w", err)
	}

	total, err := s.repo.Ticket.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket)
	}

	return response.NewPaginatedResponse(ticketResponses, req.Page, req.PerPage, total), nil
}
