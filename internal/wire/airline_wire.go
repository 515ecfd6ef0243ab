package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAirline(r chi.Router, airlineHandler *adaptor.AirlineHandler) {
	r.Route("/api/airlines", func(r chi.Router) {
		// POST /api/airlines - Register airline
		r.Post("/", airlineHandler.CreateAirline)

		// GET /api/airlines - List all airlines
		r.Get("/", airlineHandler.GetAllAirlines)

		// GET /api/airlines/{id} - View single airline
		r.Get("/{id}", airlineHandler.GetAirlineByID)

		// PUT /api/airlines/{id} - Update airline
		r.Put("/{id}", airlineHandler.UpdateAirline)

		// DELETE /api/airlines/{id} - Remove airline
		r.Delete("/{id}", airlineHandler.DeleteAirline)
	})
}
