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

type FacilityHandler struct {
	service usecase.FacilityService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.FacilityService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "facility")),
	}
}

// CreateTerminal handles POST /api/terminals
func (h *FacilityHandler) CreateTerminal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	terminal, err := h.service.CreateTerminal(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create terminal")
		return
	}

	utils.ResponseCreated(w, "success", terminal)
}

// GetAllTerminals handles GET /api/terminals
func (h *FacilityHandler) GetAllTerminals(w http.ResponseWriter, r *http.Request) {
	terminals, err := h.service.GetAllTerminals(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get terminals")
		return
	}

	utils.ResponseSuccess(w, "success", terminals)
}

// GetGatesByTerminal handles GET /api/terminals/{id}/gates
func (h *FacilityHandler) GetGatesByTerminal(w http.ResponseWriter, r *http.Request) {
	terminalID := chi.URLParam(r, "id")
	if terminalID == "" {
		utils.ResponseBadRequest(w, "Terminal ID is required", nil)
		return
	}

	gates, err := h.service.GetGatesByTerminal(r.Context(), terminalID)
	if err != nil {
		respondError(w, h.log, err, "get terminal gates")
		return
	}

	utils.ResponseSuccess(w, "success", gates)
}

// DeleteTerminal handles DELETE /api/terminals/{id}
func (h *FacilityHandler) DeleteTerminal(w http.ResponseWriter, r *http.Request) {
	terminalID := chi.URLParam(r, "id")
	if terminalID == "" {
		utils.ResponseBadRequest(w, "Terminal ID is required", nil)
		return
	}

	if err := h.service.DeleteTerminal(r.Context(), terminalID); err != nil {
		respondError(w, h.log, err, "delete terminal")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateGate handles POST /api/gates
func (h *FacilityHandler) CreateGate(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	gate, err := h.service.CreateGate(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create gate")
		return
	}

	utils.ResponseCreated(w, "success", gate)
}

// GetAllGates handles GET /api/gates
func (h *FacilityHandler) GetAllGates(w http.ResponseWriter, r *http.Request) {
	gates, err := h.service.GetAllGates(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get gates")
		return
	}

	utils.ResponseSuccess(w, "success", gates)
}

// DeleteGate handles DELETE /api/gates/{id}
func (h *FacilityHandler) DeleteGate(w http.ResponseWriter, r *http.Request) {
	gateID := chi.URLParam(r, "id")
	if gateID == "" {
		utils.ResponseBadRequest(w, "Gate ID is required", nil)
		return
	}

	if err := h.service.DeleteGate(r.Context(), gateID); err != nil {
		respondError(w, h.log, err, "delete gate")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
