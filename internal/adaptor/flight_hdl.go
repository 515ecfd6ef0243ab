package adaptor

import (
	"encoding/json"
	"net/http"

	"airline-ops/internal/dto/request"
	"airline-ops/internal/usecase"
	"airline-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// GetAllFlights handles GET /api/flights
func (h *FlightHandler) GetAllFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	flights, err := h.service.GetAllFlights(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/flights/{id}
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		respondError(w, h.log, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// UpdateFlight handles PUT /api/flights/{id}
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), flightID, &req)
	if err != nil {
		respondError(w, h.log, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		respondError(w, h.log, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
