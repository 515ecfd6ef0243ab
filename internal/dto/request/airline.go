package request

type CreateAirlineRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	IataCode    string `json:"iata_code" validate:"required,min=2,max=3"`
	Country     string `json:"country" validate:"required,max=100"`
	FleetSize   int    `json:"fleet_size" validate:"gte=0"`
	FoundedYear int    `json:"founded_year" validate:"gte=0"`
}

type UpdateAirlineRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	IataCode    string `json:"iata_code" validate:"required,min=2,max=3"`
	Country     string `json:"country" validate:"required,max=100"`
	FleetSize   int    `json:"fleet_size" validate:"gte=0"`
	FoundedYear int    `json:"founded_year" validate:"gte=0"`
}
