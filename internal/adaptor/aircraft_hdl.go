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

type AircraftHandler struct {
	service usecase.AircraftService
	log     *zap.Logger
}

func NewAircraftHandler(service usecase.AircraftService, log *zap.Logger) *AircraftHandler {
	return &AircraftHandler{
		service: service,
		log:     log.With(zap.String("handler", "aircraft")),
	}
}

// CreateAircraft handles POST /api/aircraft
func (h *AircraftHandler) CreateAircraft(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	aircraft, err := h.service.CreateAircraft(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create aircraft")
		return
	}

	utils.ResponseCreated(w, "success", aircraft)
}

// BulkCreateAircraft handles POST /api/aircraft/bulk
func (h *AircraftHandler) BulkCreateAircraft(w http.ResponseWriter, r *http.Request) {
	var req request.BulkCreateAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.BulkCreateAircraft(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "bulk create aircraft")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetAllAircraft handles GET /api/aircraft
func (h *AircraftHandler) GetAllAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.service.GetAllAircraft(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", aircraft)
}

// GetAircraftByID handles GET /api/aircraft/{id}
func (h *AircraftHandler) GetAircraftByID(w http.ResponseWriter, r *http.Request) {
	aircraftID := chi.URLParam(r, "id")
	if aircraftID == "" {
		utils.ResponseBadRequest(w, "Aircraft ID is required", nil)
		return
	}

	aircraft, err := h.service.GetAircraftByID(r.Context(), aircraftID)
	if err != nil {
		respondError(w, h.log, err, "get aircraft by ID")
		return
	}

	utils.ResponseSuccess(w, "success", aircraft)
}

// UpdateAircraft handles PUT /api/aircraft/{id}
func (h *AircraftHandler) UpdateAircraft(w http.ResponseWriter, r *http.Request) {
	aircraftID := chi.URLParam(r, "id")
	if aircraftID == "" {
		utils.ResponseBadRequest(w, "Aircraft ID is required", nil)
		return
	}

	var req request.UpdateAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	aircraft, err := h.service.UpdateAircraft(r.Context(), aircraftID, &req)
	if err != nil {
		respondError(w, h.log, err, "update aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", aircraft)
}

// DeleteAircraft handles DELETE /api/aircraft/{id}
func (h *AircraftHandler) DeleteAircraft(w http.ResponseWriter, r *http.Request) {
	aircraftID := chi.URLParam(r, "id")
	if aircraftID == "" {
		utils.ResponseBadRequest(w, "Aircraft ID is required", nil)
		return
	}

	if err := h.service.DeleteAircraft(r.Context(), aircraftID); err != nil {
		respondError(w, h.log, err, "delete aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
