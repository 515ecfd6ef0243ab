package entity

type Terminal struct {
	Base
	Name string `db:"name"`
}
