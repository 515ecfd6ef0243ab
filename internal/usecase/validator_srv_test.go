package usecase

import (
	"context"
	"errors"
	"testing"

	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) OrphanedPassengers(ctx context.Context) ([]repository.OrphanedPassenger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrphanedPassenger), args.Error(1)
}

func (m *mockAuditRepo) IncompleteUsers(ctx context.Context) ([]repository.IncompleteUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.IncompleteUser), args.Error(1)
}

func (m *mockAuditRepo) FlightBookingDrift(ctx context.Context) ([]repository.BookingDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDrift), args.Error(1)
}

func (m *mockAuditRepo) DuplicateSeats(ctx context.Context) ([]repository.DuplicateSeat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DuplicateSeat), args.Error(1)
}

func (m *mockAuditRepo) BrokenReferences(ctx context.Context) ([]repository.BrokenReference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BrokenReference), args.Error(1)
}

func cleanAuditRepo() *mockAuditRepo {
	repo := new(mockAuditRepo)
	repo.On("OrphanedPassengers", mock.Anything).Return([]repository.OrphanedPassenger{}, nil)
	repo.On("IncompleteUsers", mock.Anything).Return([]repository.IncompleteUser{}, nil)
	repo.On("FlightBookingDrift", mock.Anything).Return([]repository.BookingDrift{}, nil)
	repo.On("DuplicateSeats", mock.Anything).Return([]repository.DuplicateSeat{}, nil)
	repo.On("BrokenReferences", mock.Anything).Return([]repository.BrokenReference{}, nil)
	return repo
}

func TestCheckDatabaseHealth_Consistent(t *testing.T) {
	repo := cleanAuditRepo()
	service := NewValidatorService(repo, zap.NewNop())

	report := service.CheckDatabaseHealth(context.Background())

	assert.Equal(t, response.HealthStatusHealthy, report.Status)
	assert.Equal(t, []string{"Database is consistent"}, report.Summary)
	assert.Empty(t, report.Error)
	repo.AssertExpectations(t)
}

func TestCheckDatabaseHealth_IssuesFound(t *testing.T) {
	repo := new(mockAuditRepo)
	repo.On("OrphanedPassengers", mock.Anything).Return([]repository.OrphanedPassenger{
		{ID: uuid.New(), FullName: "Jordan Lee"},
		{ID: uuid.New(), FullName: "Sam Park"},
	}, nil)
	repo.On("IncompleteUsers", mock.Anything).Return([]repository.IncompleteUser{}, nil)
	repo.On("FlightBookingDrift", mock.Anything).Return([]repository.BookingDrift{
		{FlightID: uuid.New(), Origin: "CGK", Destination: "DPS", ActualTickets: 3, RecordedSeats: 5, Difference: -2},
	}, nil)
	repo.On("DuplicateSeats", mock.Anything).Return([]repository.DuplicateSeat{}, nil)
	repo.On("BrokenReferences", mock.Anything).Return([]repository.BrokenReference{
		{TicketID: uuid.New(), Kind: "invalid_flight_reference"},
	}, nil)

	service := NewValidatorService(repo, zap.NewNop())
	report := service.CheckDatabaseHealth(context.Background())

	assert.Equal(t, response.HealthStatusIssues, report.Status)
	assert.Contains(t, report.Summary, "2 orphaned passenger(s)")
	assert.Contains(t, report.Summary, "1 flight booking inconsistencies")
	assert.Contains(t, report.Summary, "1 broken reference(s)")
	assert.NotContains(t, report.Summary, "Database is consistent")

	assert.Len(t, report.Details.OrphanedPassengers, 2)
	assert.Equal(t, "CGK -> DPS", report.Details.BookingDrift[0].Route)
	assert.Equal(t, -2, report.Details.BookingDrift[0].Difference)
}

func TestCheckDatabaseHealth_QueryFailure(t *testing.T) {
	repo := new(mockAuditRepo)
	repo.On("OrphanedPassengers", mock.Anything).Return(nil, errors.New("relation does not exist"))
	repo.On("IncompleteUsers", mock.Anything).Return([]repository.IncompleteUser{}, nil).Maybe()
	repo.On("FlightBookingDrift", mock.Anything).Return([]repository.BookingDrift{}, nil).Maybe()
	repo.On("DuplicateSeats", mock.Anything).Return([]repository.DuplicateSeat{}, nil).Maybe()
	repo.On("BrokenReferences", mock.Anything).Return([]repository.BrokenReference{}, nil).Maybe()

	service := NewValidatorService(repo, zap.NewNop())
	report := service.CheckDatabaseHealth(context.Background())

	assert.Equal(t, response.HealthStatusError, report.Status)
	assert.Contains(t, report.Error, "relation does not exist")
	assert.Nil(t, report.Details)
}
