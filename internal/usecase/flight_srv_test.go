package usecase

import (
	"context"
	"testing"
	"time"

	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The schedule precondition runs before any store access, so a nil db and
// empty repository set are safe here.
func TestCreateFlight_RejectsNonPositiveWindow(t *testing.T) {
	svc := NewFlightService(nil, &repository.Repository{}, zap.NewNop())
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		arrival time.Time
	}{
		{"arrival equals departure", departure},
		{"arrival before departure", departure.Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateFlight(context.Background(), &request.CreateFlightRequest{
				AirlineID:   uuid.New().String(),
				AircraftID:  uuid.New().String(),
				GateID:      uuid.New().String(),
				Origin:      "CGK",
				Destination: "DPS",
				Departure:   departure,
				Arrival:     tt.arrival,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
			assert.Nil(t, resp)
		})
	}
}

func TestUpdateFlight_RejectsNonPositiveWindow(t *testing.T) {
	svc := NewFlightService(nil, &repository.Repository{}, zap.NewNop())
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	resp, err := svc.UpdateFlight(context.Background(), uuid.New().String(), &request.UpdateFlightRequest{
		Origin:      "CGK",
		Destination: "DPS",
		Departure:   departure,
		Arrival:     departure,
		Status:      "Delayed",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Nil(t, resp)
}
