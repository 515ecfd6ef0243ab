package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// POST /api/tickets - Book a seat (transactional)
		r.Post("/", ticketHandler.CreateTicket)

		// GET /api/tickets - List tickets (paginated)
		r.Get("/", ticketHandler.GetAllTickets)

		// GET /api/tickets/{id} - View single ticket
		r.Get("/{id}", ticketHandler.GetTicketByID)

		// DELETE /api/tickets/{id} - Cancel booking (transactional)
		r.Delete("/{id}", ticketHandler.DeleteTicket)
	})
}
