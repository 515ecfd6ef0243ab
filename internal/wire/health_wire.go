package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHealth(r chi.Router, healthHandler *adaptor.HealthHandler) {
	// GET /api/health/database - Run the consistency audit
	r.Get("/api/health/database", healthHandler.CheckDatabaseHealth)
}
