package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFacility(r chi.Router, facilityHandler *adaptor.FacilityHandler) {
	r.Route("/api/terminals", func(r chi.Router) {
		// POST /api/terminals - Create terminal
		r.Post("/", facilityHandler.CreateTerminal)

		// GET /api/terminals - List terminals
		r.Get("/", facilityHandler.GetAllTerminals)

		// GET /api/terminals/{id}/gates - List gates in a terminal
		r.Get("/{id}/gates", facilityHandler.GetGatesByTerminal)

		// DELETE /api/terminals/{id} - Remove terminal (refused while gates remain)
		r.Delete("/{id}", facilityHandler.DeleteTerminal)
	})

	r.Route("/api/gates", func(r chi.Router) {
		// POST /api/gates - Create gate in a terminal
		r.Post("/", facilityHandler.CreateGate)

		// GET /api/gates - List all gates
		r.Get("/", facilityHandler.GetAllGates)

		// DELETE /api/gates/{id} - Remove gate
		r.Delete("/{id}", facilityHandler.DeleteGate)
	})
}
