package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlightOverlapsWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	flight := &Flight{Departure: at(0), Arrival: at(2)}

	tests := []struct {
		name      string
		departure time.Time
		arrival   time.Time
		overlaps  bool
	}{
		{"fully before", at(-3), at(-1), false},
		{"fully after", at(3), at(5), false},
		{"contained", at(1), at(1), true},
		{"spanning", at(-1), at(3), true},
		{"identical window", at(0), at(2), true},
		// Inclusive boundaries: a window starting the instant this one
		// ends still conflicts, and vice versa.
		{"back-to-back after", at(2), at(4), true},
		{"back-to-back before", at(-2), at(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, flight.OverlapsWindow(tt.departure, tt.arrival))
		})
	}
}
