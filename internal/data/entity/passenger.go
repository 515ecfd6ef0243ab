package entity

// DefaultNationality is assigned when registration does not specify one.
const DefaultNationality = "Not Specified"

type Passenger struct {
	Base
	FullName       string  `db:"full_name"`
	PassportNumber *string `db:"passport_number"`
	IdentityNumber *string `db:"identity_number"`
	Phone          *string `db:"phone"`
	Email          *string `db:"email"` // at most one passenger per email (app-enforced)
	Nationality    string  `db:"nationality"`
}
