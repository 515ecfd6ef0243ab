package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// brokenRows looks like an empty result set but carries a deferred
// iteration error, the way pgx surfaces a connection dropped mid-stream.
type brokenRows struct {
	err error
}

func (r *brokenRows) Close()                                       {}
func (r *brokenRows) Err() error                                   { return r.err }
func (r *brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *brokenRows) Next() bool                                   { return false }
func (r *brokenRows) Scan(dest ...any) error                       { return nil }
func (r *brokenRows) Values() ([]any, error)                       { return nil, r.err }
func (r *brokenRows) RawValues() [][]byte                          { return nil }
func (r *brokenRows) Conn() *pgx.Conn                              { return nil }

// brokenQuerier hands every Query the same failing row stream.
type brokenQuerier struct {
	rows pgx.Rows
}

func (q *brokenQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.rows, nil
}

func (q *brokenQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.rows
}

func (q *brokenQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestAuditRepository_SurfacesIterationErrors(t *testing.T) {
	iterErr := errors.New("connection reset mid-scan")
	db := &brokenQuerier{rows: &brokenRows{err: iterErr}}
	repo := NewAuditRepository(db, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() (int, error)
	}{
		{"orphaned passengers", func() (int, error) {
			out, err := repo.OrphanedPassengers(ctx)
			return len(out), err
		}},
		{"incomplete users", func() (int, error) {
			out, err := repo.IncompleteUsers(ctx)
			return len(out), err
		}},
		{"flight booking drift", func() (int, error) {
			out, err := repo.FlightBookingDrift(ctx)
			return len(out), err
		}},
		{"duplicate seats", func() (int, error) {
			out, err := repo.DuplicateSeats(ctx)
			return len(out), err
		}},
		{"broken references", func() (int, error) {
			out, err := repo.BrokenReferences(ctx)
			return len(out), err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.run()
			require.Error(t, err, "a scan that died mid-stream must not read as a clean empty result")
			assert.ErrorIs(t, err, iterErr)
			assert.Zero(t, n)
		})
	}
}

func TestFlightRepository_FindAllSurfacesIterationErrors(t *testing.T) {
	iterErr := errors.New("connection reset mid-scan")
	db := &brokenQuerier{rows: &brokenRows{err: iterErr}}
	repo := NewFlightRepository(db, zap.NewNop())

	flights, err := repo.FindAll(context.Background(), 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, iterErr)
	assert.Nil(t, flights)
}
