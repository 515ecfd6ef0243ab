package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type TicketResponse struct {
	ID          string              `json:"id"`
	FlightID    string              `json:"flight_id"`
	PassengerID string              `json:"passenger_id"`
	SeatNumber  string              `json:"seat_number"`
	Class       entity.TicketClass  `json:"class"`
	Price       float64             `json:"price"`
	Status      entity.TicketStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

// DeleteTicketResponse echoes the freed seat so a client can reconcile its
// own seat map after a cancellation.
type DeleteTicketResponse struct {
	TicketID   string `json:"ticket_id"`
	FlightID   string `json:"flight_id"`
	SeatNumber string `json:"seat_number"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID.String(),
		FlightID:    ticket.FlightID.String(),
		PassengerID: ticket.PassengerID.String(),
		SeatNumber:  ticket.SeatNumber,
		Class:       ticket.Class,
		Price:       ticket.Price,
		Status:      ticket.Status,
		CreatedAt:   ticket.CreatedAt,
	}
}
