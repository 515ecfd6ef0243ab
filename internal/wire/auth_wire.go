package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/auth/register - Create user account + passenger profile
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Verify credentials
	r.Post("/api/auth/login", authHandler.Login)
}
