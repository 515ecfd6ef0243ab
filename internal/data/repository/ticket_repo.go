package repository

import (
	"context"
	"fmt"

	"airline-ops/internal/data/entity"
	"airline-ops/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	WithTx(tx pgx.Tx) TicketRepository
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindBySeat(ctx context.Context, flightID uuid.UUID, seatNumber string) (*entity.Ticket, error)
	FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	CountAll(ctx context.Context) (int64, error)
	CountByFlightID(ctx context.Context, flightID uuid.UUID) (int64, error)
	CountByPassengerID(ctx context.Context, passengerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTicketRepository(db database.Querier, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) WithTx(tx pgx.Tx) TicketRepository {
	return &ticketRepository{db: tx, log: r.log}
}

const ticketColumns = `id, flight_id, passenger_id, seat_number, class, price, status,
	created_at, updated_at`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.FlightID,
		&ticket.PassengerID,
		&ticket.SeatNumber,
		&ticket.Class,
		&ticket.Price,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, flight_id, passenger_id, seat_number, class, price, status,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.FlightID,
		ticket.PassengerID,
		ticket.SeatNumber,
		ticket.Class,
		ticket.Price,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("flight_id", ticket.FlightID.String()),
			zap.String("seat_number", ticket.SeatNumber),
		)
		return fmt.Errorf("create ticket seat %s on flight %s: %w",
			ticket.SeatNumber, ticket.FlightID.String(), err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := scanTicket(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindBySeat(ctx context.Context, flightID uuid.UUID, seatNumber string) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE flight_id = $1 AND seat_number = $2`

	ticket, err := scanTicket(r.db.QueryRow(ctx, query, flightID, seatNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by seat",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
			zap.String("seat_number", seatNumber),
		)
		return nil, fmt.Errorf("find ticket by seat %s on flight %s: %w",
			seatNumber, flightID.String(), err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindByFlightID(ctx context.Context, flightID uuid.UUID) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE flight_id = $1 ORDER BY seat_number`

	rows, err := r.db.Query(ctx, query, flightID)
	if err != nil {
		r.log.Error("Failed to find tickets by flight",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("find tickets by flight %s: %w", flightID.String(), err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find tickets", zap.Error(err))
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

func collectTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}
	return tickets, nil
}

func (r *ticketRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return count, nil
}

// CountByFlightID is the source of truth for capacity enforcement; the
// flight's booked_seats column is only a cached copy of this value.
func (r *ticketRepository) CountByFlightID(ctx context.Context, flightID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE flight_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, flightID).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets by flight",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return 0, fmt.Errorf("count tickets by flight %s: %w", flightID.String(), err)
	}

	return count, nil
}

func (r *ticketRepository) CountByPassengerID(ctx context.Context, passengerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE passenger_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, passengerID).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets by passenger",
			zap.Error(err),
			zap.String("passenger_id", passengerID.String()),
		)
		return 0, fmt.Errorf("count tickets by passenger %s: %w", passengerID.String(), err)
	}

	return count, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
