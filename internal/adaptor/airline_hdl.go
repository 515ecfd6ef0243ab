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

type AirlineHandler struct {
	service usecase.AirlineService
	log     *zap.Logger
}

func NewAirlineHandler(service usecase.AirlineService, log *zap.Logger) *AirlineHandler {
	return &AirlineHandler{
		service: service,
		log:     log.With(zap.String("handler", "airline")),
	}
}

// CreateAirline handles POST /api/airlines
func (h *AirlineHandler) CreateAirline(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAirlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	airline, err := h.service.CreateAirline(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create airline")
		return
	}

	utils.ResponseCreated(w, "success", airline)
}

// GetAllAirlines handles GET /api/airlines
func (h *AirlineHandler) GetAllAirlines(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.service.GetAllAirlines(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get airlines")
		return
	}

	utils.ResponseSuccess(w, "success", airlines)
}

// GetAirlineByID handles GET /api/airlines/{id}
func (h *AirlineHandler) GetAirlineByID(w http.ResponseWriter, r *http.Request) {
	airlineID := chi.URLParam(r, "id")
	if airlineID == "" {
		utils.ResponseBadRequest(w, "Airline ID is required", nil)
		return
	}

	airline, err := h.service.GetAirlineByID(r.Context(), airlineID)
	if err != nil {
		respondError(w, h.log, err, "get airline by ID")
		return
	}

	utils.ResponseSuccess(w, "success", airline)
}

// UpdateAirline handles PUT /api/airlines/{id}
func (h *AirlineHandler) UpdateAirline(w http.ResponseWriter, r *http.Request) {
	airlineID := chi.URLParam(r, "id")
	if airlineID == "" {
		utils.ResponseBadRequest(w, "Airline ID is required", nil)
		return
	}

	var req request.UpdateAirlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	airline, err := h.service.UpdateAirline(r.Context(), airlineID, &req)
	if err != nil {
		respondError(w, h.log, err, "update airline")
		return
	}

	utils.ResponseSuccess(w, "success", airline)
}

// DeleteAirline handles DELETE /api/airlines/{id}
func (h *AirlineHandler) DeleteAirline(w http.ResponseWriter, r *http.Request) {
	airlineID := chi.URLParam(r, "id")
	if airlineID == "" {
		utils.ResponseBadRequest(w, "Airline ID is required", nil)
		return
	}

	if err := h.service.DeleteAirline(r.Context(), airlineID); err != nil {
		respondError(w, h.log, err, "delete airline")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
