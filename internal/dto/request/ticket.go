package request

type CreateTicketRequest struct {
	FlightID    string  `json:"flight_id" validate:"required,uuid"`
	PassengerID string  `json:"passenger_id" validate:"required,uuid"`
	SeatNumber  string  `json:"seat_number" validate:"required,max=5"`
	Class       string  `json:"class,omitempty" validate:"omitempty,oneof=Economy Business First"`
	Price       float64 `json:"price" validate:"gte=0"`
}
