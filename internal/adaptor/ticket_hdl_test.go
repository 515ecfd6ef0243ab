package adaptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"airline-ops/internal/dto/response"
	"airline-ops/internal/usecase"
	"airline-ops/internal/usecase/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTicketRouter(h *TicketHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/tickets", h.CreateTicket)
	r.Get("/api/tickets", h.GetAllTickets)
	r.Get("/api/tickets/{id}", h.GetTicketByID)
	r.Delete("/api/tickets/{id}", h.DeleteTicket)
	return r
}

func bookingBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"flight_id":    uuid.New().String(),
		"passenger_id": uuid.New().String(),
		"seat_number":  "12A",
		"class":        "Economy",
		"price":        125.50,
	})
	return body
}

func TestTicketHandler_CreateTicket_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "booked",
			serviceErr:     nil,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "seat already taken",
			serviceErr:     fmt.Errorf("seat 12A: %w", usecase.ErrSeatTaken),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "flight full",
			serviceErr:     fmt.Errorf("flight x: %w", usecase.ErrFlightFull),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "flight missing",
			serviceErr:     fmt.Errorf("flight x: %w", usecase.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "validation failure",
			serviceErr:     &usecase.ValidationError{Fields: map[string]string{"seat_number": "seat_number is required"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockTicketService)
			handler := NewTicketHandler(mockService, zap.NewNop())
			router := setupTicketRouter(handler)

			var result *response.TicketResponse
			if tt.serviceErr == nil {
				result = &response.TicketResponse{ID: uuid.New().String(), SeatNumber: "12A"}
			}
			mockService.On("CreateTicket", mock.Anything, mock.Anything).Return(result, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewReader(bookingBody()))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	ticketID := uuid.New().String()
	flightID := uuid.New().String()

	mockService := new(mocks.MockTicketService)
	handler := NewTicketHandler(mockService, zap.NewNop())
	router := setupTicketRouter(handler)

	mockService.On("DeleteTicket", mock.Anything, ticketID).Return(&response.DeleteTicketResponse{
		TicketID:   ticketID,
		FlightID:   flightID,
		SeatNumber: "12A",
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/tickets/"+ticketID, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data response.DeleteTicketResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "12A", resp.Data.SeatNumber)
	assert.Equal(t, flightID, resp.Data.FlightID)

	mockService.AssertExpectations(t)
}
