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

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// GetAllTickets handles GET /api/tickets
func (h *TicketHandler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	tickets, err := h.service.GetAllTickets(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	ticket, err := h.service.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		respondError(w, h.log, err, "get ticket by ID")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// DeleteTicket handles DELETE /api/tickets/{id}
func (h *TicketHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	result, err := h.service.DeleteTicket(r.Context(), ticketID)
	if err != nil {
		respondError(w, h.log, err, "delete ticket")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
