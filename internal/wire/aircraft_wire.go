package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAircraft(r chi.Router, aircraftHandler *adaptor.AircraftHandler) {
	r.Route("/api/aircraft", func(r chi.Router) {
		// POST /api/aircraft - Register single aircraft
		r.Post("/", aircraftHandler.CreateAircraft)

		// POST /api/aircraft/bulk - Register a batch atomically
		r.Post("/bulk", aircraftHandler.BulkCreateAircraft)

		// GET /api/aircraft - List fleet
		r.Get("/", aircraftHandler.GetAllAircraft)

		// GET /api/aircraft/{id} - View single aircraft
		r.Get("/{id}", aircraftHandler.GetAircraftByID)

		// PUT /api/aircraft/{id} - Update aircraft
		r.Put("/{id}", aircraftHandler.UpdateAircraft)

		// DELETE /api/aircraft/{id} - Remove aircraft
		r.Delete("/{id}", aircraftHandler.DeleteAircraft)
	})
}
