// internal/wire/wire.go
package wire

import (
	"net/http"

	"airline-ops/internal/adaptor"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/usecase"
	"airline-ops/pkg/database"
	"airline-ops/pkg/middleware"
	"airline-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(db, repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireAirline(r, handler.Airline)
	wireAircraft(r, handler.Aircraft)
	wireFacility(r, handler.Facility)
	wireFlight(r, handler.Flight)
	wirePassenger(r, handler.Passenger)
	wireTicket(r, handler.Ticket)
	wireNote(r, handler.Note)
	wireHealth(r, handler.Health)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
