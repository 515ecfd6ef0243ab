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
	"airline-ops/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAirlineRouter(h *AirlineHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/airlines", h.CreateAirline)
	r.Get("/api/airlines", h.GetAllAirlines)
	r.Get("/api/airlines/{id}", h.GetAirlineByID)
	r.Put("/api/airlines/{id}", h.UpdateAirline)
	r.Delete("/api/airlines/{id}", h.DeleteAirline)
	return r
}

func TestAirlineHandler_CreateAirline(t *testing.T) {
	mockService := new(mocks.MockAirlineService)
	handler := NewAirlineHandler(mockService, zap.NewNop())
	router := setupAirlineRouter(handler)

	expected := &response.AirlineResponse{
		ID:       uuid.New().String(),
		Name:     "Garuda Indonesia",
		IataCode: "GA",
		Country:  "Indonesia",
	}
	mockService.On("CreateAirline", mock.Anything, mock.Anything).Return(expected, nil)

	body, _ := json.Marshal(map[string]any{
		"name":      "Garuda Indonesia",
		"iata_code": "GA",
		"country":   "Indonesia",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/airlines", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Status)

	mockService.AssertExpectations(t)
}

func TestAirlineHandler_CreateAirline_InvalidBody(t *testing.T) {
	mockService := new(mocks.MockAirlineService)
	handler := NewAirlineHandler(mockService, zap.NewNop())
	router := setupAirlineRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/airlines", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "CreateAirline", mock.Anything, mock.Anything)
}

func TestAirlineHandler_GetAirlineByID(t *testing.T) {
	airlineID := uuid.New().String()

	tests := []struct {
		name           string
		mockReturn     *response.AirlineResponse
		mockError      error
		expectedStatus int
	}{
		{
			name:           "airline found",
			mockReturn:     &response.AirlineResponse{ID: airlineID, Name: "Garuda Indonesia"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "airline missing",
			mockError:      fmt.Errorf("airline %s: %w", airlineID, usecase.ErrNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			mockError:      fmt.Errorf("airline ID %q: %w", airlineID, usecase.ErrInvalidID),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockAirlineService)
			handler := NewAirlineHandler(mockService, zap.NewNop())
			router := setupAirlineRouter(handler)

			mockService.On("GetAirlineByID", mock.Anything, airlineID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/airlines/"+airlineID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAirlineHandler_DeleteAirline_Conflict(t *testing.T) {
	airlineID := uuid.New().String()

	mockService := new(mocks.MockAirlineService)
	handler := NewAirlineHandler(mockService, zap.NewNop())
	router := setupAirlineRouter(handler)

	mockService.On("DeleteAirline", mock.Anything, airlineID).
		Return(fmt.Errorf("airline %s: %w", airlineID, usecase.ErrHasDependents))

	req := httptest.NewRequest(http.MethodDelete, "/api/airlines/"+airlineID, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockService.AssertExpectations(t)
}
