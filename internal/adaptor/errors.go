package adaptor

import (
	"errors"
	"net/http"

	"airline-ops/internal/usecase"
	"airline-ops/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps a service error onto an HTTP status. Precondition
// failures and commit-time conflicts arrive as the same sentinels, so the
// mapping here is the single source of truth for the wire contract.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		if len(validationErr.Problems) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", validationErr.Problems)
			return
		}
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrSeatTaken),
		errors.Is(err, usecase.ErrFlightFull),
		errors.Is(err, usecase.ErrAircraftConflict),
		errors.Is(err, usecase.ErrGateConflict),
		errors.Is(err, usecase.ErrDuplicateIdentity),
		errors.Is(err, usecase.ErrDuplicateKey),
		errors.Is(err, usecase.ErrHasDependents):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidSchedule):
		log.Warn(operation+" failed - invalid schedule", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid username or password")

	case errors.Is(err, usecase.ErrInvalidID):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
