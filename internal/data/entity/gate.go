package entity

import "github.com/google/uuid"

type GateStatus string

const (
	GateStatusOpen        GateStatus = "Open"
	GateStatusClosed      GateStatus = "Closed"
	GateStatusUnderRepair GateStatus = "Under Repair"
)

type Gate struct {
	Base
	TerminalID   uuid.UUID  `db:"terminal_id"`
	Number       string     `db:"gate_number"` // A1, B12, etc.
	Status       GateStatus `db:"status"`
	AreaCapacity int        `db:"area_capacity"`
}
