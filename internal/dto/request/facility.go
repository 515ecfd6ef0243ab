package request

type CreateTerminalRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateGateRequest struct {
	TerminalID   string `json:"terminal_id" validate:"required,uuid"`
	Number       string `json:"gate_number" validate:"required,max=10"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=Open Closed 'Under Repair'"`
	AreaCapacity int    `json:"area_capacity" validate:"gte=0"`
}
