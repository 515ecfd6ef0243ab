package adaptor

import (
	"encoding/json"
	"net/http"

	"airline-ops/internal/dto/response"
	"airline-ops/internal/usecase"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service usecase.ValidatorService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.ValidatorService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// CheckDatabaseHealth handles GET /api/health/database. The verdict is
// always 200; the report itself says whether the data is consistent. Only a
// failed audit run maps to 500.
func (h *HealthHandler) CheckDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	report := h.service.CheckDatabaseHealth(r.Context())

	code := http.StatusOK
	if report.Status == response.HealthStatusError {
		code = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(report)
}
