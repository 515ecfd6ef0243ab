package usecase

import (
	"errors"
	"fmt"
	"strings"

	"airline-ops/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Failure taxonomy for the command layer. A precondition failure found by an
// explicit read and the same conflict surfaced by the store at commit time
// map to the same sentinel, so callers see one error kind per logical
// conflict regardless of which side of the race they were on.
var (
	ErrNotFound           = errors.New("referenced record not found")
	ErrDuplicateIdentity  = errors.New("identity already registered")
	ErrDuplicateKey       = errors.New("unique key already exists")
	ErrSeatTaken          = errors.New("seat already taken on this flight")
	ErrFlightFull         = errors.New("flight is fully booked")
	ErrInvalidSchedule    = errors.New("arrival must be after departure")
	ErrAircraftConflict   = errors.New("aircraft already scheduled in this time window")
	ErrGateConflict       = errors.New("gate already occupied in this time window")
	ErrHasDependents      = errors.New("record still referenced by other records")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidID          = errors.New("malformed ID")
)

// ValidationError carries everything wrong with a request. Problems is used
// by the bulk commands, which collect every finding in the pre-check phase
// instead of stopping at the first one.
type ValidationError struct {
	Fields   map[string]string
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) > 0 {
		return "validation failed: " + strings.Join(e.Problems, "; ")
	}

	var msgs []string
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newFieldValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func newBulkValidationError(problems []string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// parseID parses a route or payload ID, wrapping malformed input in
// ErrInvalidID so the failure stays inside the error taxonomy.
func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s ID %q: %w", kind, raw, ErrInvalidID)
	}
	return id, nil
}

// isRepoNotFound reports whether an update or delete matched no row.
func isRepoNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// uniqueViolation unwraps a unique-constraint violation (SQLSTATE 23505).
func uniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr, true
	}
	return nil, false
}

// mapUniqueViolation translates a commit-time unique violation into the
// sentinel the equivalent precondition read would have produced. Constraint
// names match migrations/0001_schema.sql.
func mapUniqueViolation(err error) error {
	pgErr, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch pgErr.ConstraintName {
	case "ticket_flight_seat_key":
		return fmt.Errorf("%w: %v", ErrSeatTaken, pgErr.Detail)
	case "users_username_key", "users_email_key":
		return fmt.Errorf("%w: %v", ErrDuplicateIdentity, pgErr.Detail)
	default:
		return fmt.Errorf("%w: %v", ErrDuplicateKey, pgErr.Detail)
	}
}
