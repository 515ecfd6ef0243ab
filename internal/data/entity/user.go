package entity

import "github.com/google/uuid"

type UserRole string

const (
	RolePassenger UserRole = "passenger"
	RoleAdmin     UserRole = "admin"
)

type User struct {
	Base
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         UserRole   `db:"role"`
	PassengerID  *uuid.UUID `db:"passenger_id"` // every passenger-role user should end up linked
}
