package repository

import (
	"context"
	"fmt"

	"airline-ops/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrphanedPassenger is a passenger record no user account points at.
type OrphanedPassenger struct {
	ID       uuid.UUID
	FullName string
	Email    *string
}

// IncompleteUser is a user account with no linked passenger profile.
type IncompleteUser struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// BookingDrift is a flight whose cached booked_seats disagrees with the
// actual ticket count. Difference is actual minus recorded.
type BookingDrift struct {
	FlightID      uuid.UUID
	Origin        string
	Destination   string
	ActualTickets int
	RecordedSeats int
	Difference    int
}

// DuplicateSeat is a (flight, seat) pair claimed by more than one ticket.
type DuplicateSeat struct {
	FlightID    uuid.UUID
	SeatNumber  string
	TicketCount int
	TicketIDs   []uuid.UUID
}

// BrokenReference is a ticket pointing at a flight or passenger that no
// longer exists. Kind is "invalid_flight_reference" or
// "invalid_passenger_reference".
type BrokenReference struct {
	TicketID uuid.UUID
	Kind     string
}

// AuditRepository holds the read-only consistency queries. None of them
// mutate anything, so they are safe to run concurrently with writes; the
// result is a best-effort snapshot.
type AuditRepository interface {
	OrphanedPassengers(ctx context.Context) ([]OrphanedPassenger, error)
	IncompleteUsers(ctx context.Context) ([]IncompleteUser, error)
	FlightBookingDrift(ctx context.Context) ([]BookingDrift, error)
	DuplicateSeats(ctx context.Context) ([]DuplicateSeat, error)
	BrokenReferences(ctx context.Context) ([]BrokenReference, error)
}

type auditRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAuditRepository(db database.Querier, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) OrphanedPassengers(ctx context.Context) ([]OrphanedPassenger, error) {
	query := `
		SELECT p.id, p.full_name, p.email
		FROM passengers p
		LEFT JOIN users u ON u.passenger_id = p.id
		WHERE u.id IS NULL
		ORDER BY p.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to check orphaned passengers", zap.Error(err))
		return nil, fmt.Errorf("check orphaned passengers: %w", err)
	}
	defer rows.Close()

	var orphans []OrphanedPassenger
	for rows.Next() {
		var o OrphanedPassenger
		if err := rows.Scan(&o.ID, &o.FullName, &o.Email); err != nil {
			return nil, fmt.Errorf("scan orphaned passenger: %w", err)
		}
		orphans = append(orphans, o)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orphaned passenger rows: %w", err)
	}

	return orphans, nil
}

func (r *auditRepository) IncompleteUsers(ctx context.Context) ([]IncompleteUser, error) {
	query := `
		SELECT id, username, email
		FROM users
		WHERE passenger_id IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to check incomplete users", zap.Error(err))
		return nil, fmt.Errorf("check incomplete users: %w", err)
	}
	defer rows.Close()

	var users []IncompleteUser
	for rows.Next() {
		var u IncompleteUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("scan incomplete user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate incomplete user rows: %w", err)
	}

	return users, nil
}

func (r *auditRepository) FlightBookingDrift(ctx context.Context) ([]BookingDrift, error) {
	query := `
		SELECT f.id, f.origin, f.destination, COUNT(t.id) AS actual, f.booked_seats
		FROM flights f
		LEFT JOIN tickets t ON t.flight_id = f.id
		GROUP BY f.id, f.origin, f.destination, f.booked_seats
		HAVING COUNT(t.id) <> f.booked_seats
		ORDER BY f.departure
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to check booking drift", zap.Error(err))
		return nil, fmt.Errorf("check booking drift: %w", err)
	}
	defer rows.Close()

	var drift []BookingDrift
	for rows.Next() {
		var d BookingDrift
		if err := rows.Scan(&d.FlightID, &d.Origin, &d.Destination, &d.ActualTickets, &d.RecordedSeats); err != nil {
			return nil, fmt.Errorf("scan booking drift: %w", err)
		}
		d.Difference = d.ActualTickets - d.RecordedSeats
		drift = append(drift, d)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking drift rows: %w", err)
	}

	return drift, nil
}

func (r *auditRepository) DuplicateSeats(ctx context.Context) ([]DuplicateSeat, error) {
	query := `
		SELECT flight_id, seat_number, COUNT(*) AS ticket_count, ARRAY_AGG(id) AS ticket_ids
		FROM tickets
		GROUP BY flight_id, seat_number
		HAVING COUNT(*) > 1
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to check duplicate seats", zap.Error(err))
		return nil, fmt.Errorf("check duplicate seats: %w", err)
	}
	defer rows.Close()

	var duplicates []DuplicateSeat
	for rows.Next() {
		var d DuplicateSeat
		if err := rows.Scan(&d.FlightID, &d.SeatNumber, &d.TicketCount, &d.TicketIDs); err != nil {
			return nil, fmt.Errorf("scan duplicate seat: %w", err)
		}
		duplicates = append(duplicates, d)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate duplicate seat rows: %w", err)
	}

	return duplicates, nil
}

func (r *auditRepository) BrokenReferences(ctx context.Context) ([]BrokenReference, error) {
	query := `
		SELECT t.id, 'invalid_flight_reference' AS kind
		FROM tickets t
		LEFT JOIN flights f ON f.id = t.flight_id
		WHERE f.id IS NULL
		UNION ALL
		SELECT t.id, 'invalid_passenger_reference' AS kind
		FROM tickets t
		LEFT JOIN passengers p ON p.id = t.passenger_id
		WHERE p.id IS NULL
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to check broken references", zap.Error(err))
		return nil, fmt.Errorf("check broken references: %w", err)
	}
	defer rows.Close()

	var broken []BrokenReference
	for rows.Next() {
		var b BrokenReference
		if err := rows.Scan(&b.TicketID, &b.Kind); err != nil {
			return nil, fmt.Errorf("scan broken reference: %w", err)
		}
		broken = append(broken, b)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate broken reference rows: %w", err)
	}

	return broken, nil
}
