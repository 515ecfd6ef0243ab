package response

import (
	"time"

	"github.com/google/uuid"
)

type HealthStatus string

const (
	HealthStatusHealthy HealthStatus = "HEALTHY"
	HealthStatusIssues  HealthStatus = "ISSUES_FOUND"
	HealthStatusError   HealthStatus = "ERROR"
)

type OrphanedPassengerDetail struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"name"`
	Email    *string   `json:"email,omitempty"`
}

type IncompleteUserDetail struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type BookingDriftDetail struct {
	FlightID      uuid.UUID `json:"flight_id"`
	Route         string    `json:"route"`
	ActualTickets int       `json:"actual_tickets"`
	RecordedSeats int       `json:"recorded_booked_seats"`
	Difference    int       `json:"difference"`
}

type DuplicateSeatDetail struct {
	FlightID    uuid.UUID   `json:"flight_id"`
	SeatNumber  string      `json:"seat_number"`
	TicketCount int         `json:"ticket_count"`
	TicketIDs   []uuid.UUID `json:"ticket_ids"`
}

type BrokenReferenceDetail struct {
	TicketID uuid.UUID `json:"ticket_id"`
	Kind     string    `json:"type"`
}

type ConsistencyChecks struct {
	OrphanedPassengers []OrphanedPassengerDetail `json:"orphaned_passengers"`
	IncompleteUsers    []IncompleteUserDetail    `json:"incomplete_users"`
	BookingDrift       []BookingDriftDetail      `json:"flight_booking_counts"`
	DuplicateSeats     []DuplicateSeatDetail     `json:"duplicate_seats"`
	BrokenReferences   []BrokenReferenceDetail   `json:"broken_references"`
}

type DatabaseHealthResponse struct {
	Status    HealthStatus       `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Summary   []string           `json:"summary"`
	Details   *ConsistencyChecks `json:"details,omitempty"`
	Error     string             `json:"error,omitempty"`
}
