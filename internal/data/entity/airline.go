package entity

type Airline struct {
	Base
	Name        string `db:"name"`
	IataCode    string `db:"iata_code"`
	Country     string `db:"country"`
	FleetSize   int    `db:"fleet_size"`
	FoundedYear int    `db:"founded_year"`
}
