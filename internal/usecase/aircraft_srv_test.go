package usecase

import (
	"context"
	"testing"

	"airline-ops/internal/data/entity"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAirlineRepo struct {
	mock.Mock
}

func (m *mockAirlineRepo) WithTx(tx pgx.Tx) repository.AirlineRepository { return m }

func (m *mockAirlineRepo) Create(ctx context.Context, airline *entity.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *mockAirlineRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airline), args.Error(1)
}

func (m *mockAirlineRepo) FindAll(ctx context.Context) ([]*entity.Airline, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Airline), args.Error(1)
}

func (m *mockAirlineRepo) FindExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *mockAirlineRepo) Update(ctx context.Context, airline *entity.Airline) error {
	return m.Called(ctx, airline).Error(0)
}

func (m *mockAirlineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAircraftRepo struct {
	mock.Mock
}

func (m *mockAircraftRepo) WithTx(tx pgx.Tx) repository.AircraftRepository { return m }

func (m *mockAircraftRepo) Create(ctx context.Context, aircraft *entity.Aircraft) error {
	return m.Called(ctx, aircraft).Error(0)
}

func (m *mockAircraftRepo) CreateBatch(ctx context.Context, aircraft []*entity.Aircraft) error {
	return m.Called(ctx, aircraft).Error(0)
}

func (m *mockAircraftRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aircraft), args.Error(1)
}

func (m *mockAircraftRepo) FindByRegistration(ctx context.Context, registration string) (*entity.Aircraft, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aircraft), args.Error(1)
}

func (m *mockAircraftRepo) FindExistingRegistrations(ctx context.Context, registrations []string) ([]string, error) {
	args := m.Called(ctx, registrations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockAircraftRepo) FindAll(ctx context.Context) ([]*entity.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Aircraft), args.Error(1)
}

func (m *mockAircraftRepo) Update(ctx context.Context, aircraft *entity.Aircraft) error {
	return m.Called(ctx, aircraft).Error(0)
}

func (m *mockAircraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestBulkCreateAircraft_CollectsAllProblems(t *testing.T) {
	knownAirline := uuid.New()
	unknownAirline := uuid.New()

	airlines := new(mockAirlineRepo)
	airlines.On("FindExistingIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]bool{knownAirline: true}, nil)

	aircraft := new(mockAircraftRepo)
	aircraft.On("FindExistingRegistrations", mock.Anything, mock.Anything).
		Return([]string{"PK-TAKEN"}, nil)

	repo := &repository.Repository{Airline: airlines, Aircraft: aircraft}
	service := NewAircraftService(nil, repo, zap.NewNop())

	_, err := service.BulkCreateAircraft(context.Background(), &request.BulkCreateAircraftRequest{
		Aircraft: []request.CreateAircraftRequest{
			{AirlineID: knownAirline.String(), Model: "737-800", SeatCapacity: 180, RegistrationNumber: "PK-TAKEN"},
			{AirlineID: unknownAirline.String(), Model: "A320", SeatCapacity: 150, RegistrationNumber: "PK-AAA"},
			{AirlineID: knownAirline.String(), Model: "A320", SeatCapacity: 150, RegistrationNumber: "PK-AAA"},
		},
	})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Unknown airline, in-batch duplicate registration, and an existing
	// registration all show up in one report.
	assert.Len(t, validationErr.Problems, 3)
	aircraft.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestBulkCreateAircraft_RejectsInvalidAirlineID(t *testing.T) {
	airlines := new(mockAirlineRepo)
	aircraft := new(mockAircraftRepo)

	repo := &repository.Repository{Airline: airlines, Aircraft: aircraft}
	service := NewAircraftService(nil, repo, zap.NewNop())

	// The uuid tag on airline_id stops this before any store access.
	_, err := service.BulkCreateAircraft(context.Background(), &request.BulkCreateAircraftRequest{
		Aircraft: []request.CreateAircraftRequest{
			{AirlineID: "not-a-uuid", Model: "737-800", SeatCapacity: 180, RegistrationNumber: "PK-AAA"},
		},
	})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Fields)

	airlines.AssertNotCalled(t, "FindExistingIDs", mock.Anything, mock.Anything)
	aircraft.AssertNotCalled(t, "FindExistingRegistrations", mock.Anything, mock.Anything)
}
