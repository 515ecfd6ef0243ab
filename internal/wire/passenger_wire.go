package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePassenger(r chi.Router, passengerHandler *adaptor.PassengerHandler) {
	r.Route("/api/passengers", func(r chi.Router) {
		// POST /api/passengers - Create passenger profile
		r.Post("/", passengerHandler.CreatePassenger)

		// POST /api/passengers/bulk - Create a batch atomically
		r.Post("/bulk", passengerHandler.BulkCreatePassengers)

		// GET /api/passengers - List passengers (paginated)
		r.Get("/", passengerHandler.GetAllPassengers)

		// GET /api/passengers/{id} - View single passenger
		r.Get("/{id}", passengerHandler.GetPassengerByID)

		// PUT /api/passengers/{id} - Update passenger
		r.Put("/{id}", passengerHandler.UpdatePassenger)

		// DELETE /api/passengers/{id} - Remove passenger (refused while referenced)
		r.Delete("/{id}", passengerHandler.DeletePassenger)
	})
}
