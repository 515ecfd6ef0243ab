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

type PassengerHandler struct {
	service usecase.PassengerService
	log     *zap.Logger
}

func NewPassengerHandler(service usecase.PassengerService, log *zap.Logger) *PassengerHandler {
	return &PassengerHandler{
		service: service,
		log:     log.With(zap.String("handler", "passenger")),
	}
}

// CreatePassenger handles POST /api/passengers
func (h *PassengerHandler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	passenger, err := h.service.CreatePassenger(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create passenger")
		return
	}

	utils.ResponseCreated(w, "success", passenger)
}

// BulkCreatePassengers handles POST /api/passengers/bulk
func (h *PassengerHandler) BulkCreatePassengers(w http.ResponseWriter, r *http.Request) {
	var req request.BulkCreatePassengersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.BulkCreatePassengers(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "bulk create passengers")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetAllPassengers handles GET /api/passengers
func (h *PassengerHandler) GetAllPassengers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	passengers, err := h.service.GetAllPassengers(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get passengers")
		return
	}

	utils.ResponseSuccess(w, "success", passengers)
}

// GetPassengerByID handles GET /api/passengers/{id}
func (h *PassengerHandler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	passenger, err := h.service.GetPassengerByID(r.Context(), passengerID)
	if err != nil {
		respondError(w, h.log, err, "get passenger by ID")
		return
	}

	utils.ResponseSuccess(w, "success", passenger)
}

// UpdatePassenger handles PUT /api/passengers/{id}
func (h *PassengerHandler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	var req request.UpdatePassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	passenger, err := h.service.UpdatePassenger(r.Context(), passengerID, &req)
	if err != nil {
		respondError(w, h.log, err, "update passenger")
		return
	}

	utils.ResponseSuccess(w, "success", passenger)
}

// DeletePassenger handles DELETE /api/passengers/{id}
func (h *PassengerHandler) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	passengerID := chi.URLParam(r, "id")
	if passengerID == "" {
		utils.ResponseBadRequest(w, "Passenger ID is required", nil)
		return
	}

	if err := h.service.DeletePassenger(r.Context(), passengerID); err != nil {
		respondError(w, h.log, err, "delete passenger")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
