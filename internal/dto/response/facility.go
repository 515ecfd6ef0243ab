package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type TerminalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GateResponse struct {
	ID           string            `json:"id"`
	TerminalID   string            `json:"terminal_id"`
	Number       string            `json:"gate_number"`
	Status       entity.GateStatus `json:"status"`
	AreaCapacity int               `json:"area_capacity"`
	CreatedAt    time.Time         `json:"created_at"`
}

func TerminalToResponse(terminal *entity.Terminal) TerminalResponse {
	return TerminalResponse{
		ID:        terminal.ID.String(),
		Name:      terminal.Name,
		CreatedAt: terminal.CreatedAt,
	}
}

func GateToResponse(gate *entity.Gate) GateResponse {
	return GateResponse{
		ID:           gate.ID.String(),
		TerminalID:   gate.TerminalID.String(),
		Number:       gate.Number,
		Status:       gate.Status,
		AreaCapacity: gate.AreaCapacity,
		CreatedAt:    gate.CreatedAt,
	}
}
