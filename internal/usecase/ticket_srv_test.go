package usecase

import (
	"testing"

	"airline-ops/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveCapacity(t *testing.T) {
	tests := []struct {
		name     string
		aircraft *entity.Aircraft
		want     int
	}{
		{
			name:     "aircraft capacity wins",
			aircraft: &entity.Aircraft{SeatCapacity: 72},
			want:     72,
		},
		{
			name:     "nil aircraft falls back to default",
			aircraft: nil,
			want:     entity.DefaultFlightCapacity,
		},
		{
			name:     "zero capacity falls back to default",
			aircraft: &entity.Aircraft{SeatCapacity: 0},
			want:     entity.DefaultFlightCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveCapacity(tt.aircraft))
		})
	}
}
