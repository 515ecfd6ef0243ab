package usecase

import (
	"errors"
	"fmt"
	"testing"

	"airline-ops/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{
			name:       "seat constraint maps to seat taken",
			constraint: "ticket_flight_seat_key",
			want:       ErrSeatTaken,
		},
		{
			name:       "username constraint maps to duplicate identity",
			constraint: "users_username_key",
			want:       ErrDuplicateIdentity,
		},
		{
			name:       "email constraint maps to duplicate identity",
			constraint: "users_email_key",
			want:       ErrDuplicateIdentity,
		},
		{
			name:       "unknown constraint maps to duplicate key",
			constraint: "aircraft_registration_key",
			want:       ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           "23505",
				ConstraintName: tt.constraint,
				Detail:         "Key already exists.",
			}

			got := mapUniqueViolation(fmt.Errorf("create: %w", pgErr))
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapUniqueViolation_PassesThroughOtherErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"} // foreign key, not unique
	err := fmt.Errorf("create: %w", pgErr)
	assert.Equal(t, err, mapUniqueViolation(err))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, mapUniqueViolation(plain))
}

func TestValidationError_Error(t *testing.T) {
	fieldErr := newFieldValidationError(map[string]string{"email": "email is invalid"})
	assert.Contains(t, fieldErr.Error(), "validation failed")
	assert.Contains(t, fieldErr.Error(), "email is invalid")

	bulkErr := newBulkValidationError([]string{
		"entry 1: registration PK-AAA duplicates entry 0",
		"airline 7a1f does not exist",
	})
	assert.Contains(t, bulkErr.Error(), "duplicates entry 0")
	assert.Contains(t, bulkErr.Error(), "does not exist")
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	parsed, err := parseID("flight", id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseID("flight", "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestIsRepoNotFound(t *testing.T) {
	assert.True(t, isRepoNotFound(fmt.Errorf("flight x: %w", repository.ErrNotFound)))
	assert.False(t, isRepoNotFound(errors.New("flight x: gone")))
}
