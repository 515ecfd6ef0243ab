package wire

import (
	"airline-ops/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		// GET /api/users - List user accounts (paginated)
		r.Get("/", userHandler.GetAllUsers)

		// GET /api/users/{id} - View single user account
		r.Get("/{id}", userHandler.GetUserByID)

		// DELETE /api/users/{id} - Remove user account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
