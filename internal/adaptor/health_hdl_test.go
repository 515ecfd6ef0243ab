package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"airline-ops/internal/dto/response"
	"airline-ops/internal/usecase/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthHandler_CheckDatabaseHealth(t *testing.T) {
	tests := []struct {
		name           string
		report         *response.DatabaseHealthResponse
		expectedStatus int
	}{
		{
			name: "consistent database",
			report: &response.DatabaseHealthResponse{
				Status:    response.HealthStatusHealthy,
				Timestamp: time.Now(),
				Summary:   []string{"Database is consistent"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "issues reported with 200",
			report: &response.DatabaseHealthResponse{
				Status:    response.HealthStatusIssues,
				Timestamp: time.Now(),
				Summary:   []string{"2 orphaned passenger(s)"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "audit failure maps to 500",
			report: &response.DatabaseHealthResponse{
				Status:    response.HealthStatusError,
				Timestamp: time.Now(),
				Error:     "connection refused",
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockValidatorService)
			mockService.On("CheckDatabaseHealth", mock.Anything).Return(tt.report)

			handler := NewHealthHandler(mockService, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/api/health/database", nil)
			rec := httptest.NewRecorder()

			handler.CheckDatabaseHealth(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var report response.DatabaseHealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
			assert.Equal(t, tt.report.Status, report.Status)

			mockService.AssertExpectations(t)
		})
	}
}
