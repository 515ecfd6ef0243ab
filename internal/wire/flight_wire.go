package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	r.Route("/api/flights", func(r chi.Router) {
		// POST /api/flights - Schedule flight (conflict-checked)
		r.Post("/", flightHandler.CreateFlight)

		// GET /api/flights - List flights (paginated)
		r.Get("/", flightHandler.GetAllFlights)

		// GET /api/flights/{id} - View single flight
		r.Get("/{id}", flightHandler.GetFlightByID)

		// PUT /api/flights/{id} - Update flight
		r.Put("/{id}", flightHandler.UpdateFlight)

		// DELETE /api/flights/{id} - Remove flight
		r.Delete("/{id}", flightHandler.DeleteFlight)
	})
}
