package usecase

import (
	"context"
	"testing"
	"time"

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

type mockPassengerRepo struct {
	mock.Mock
}

func (m *mockPassengerRepo) WithTx(tx pgx.Tx) repository.PassengerRepository { return m }

func (m *mockPassengerRepo) Create(ctx context.Context, passenger *entity.Passenger) error {
	return m.Called(ctx, passenger).Error(0)
}

func (m *mockPassengerRepo) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	return m.Called(ctx, passengers).Error(0)
}

func (m *mockPassengerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *mockPassengerRepo) FindByEmail(ctx context.Context, email string) (*entity.Passenger, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *mockPassengerRepo) FindByIdentityNumber(ctx context.Context, identityNumber string) (*entity.Passenger, error) {
	args := m.Called(ctx, identityNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *mockPassengerRepo) FindByPhone(ctx context.Context, phone string) (*entity.Passenger, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *mockPassengerRepo) FindExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockPassengerRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Passenger, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Passenger), args.Error(1)
}

func (m *mockPassengerRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPassengerRepo) Update(ctx context.Context, passenger *entity.Passenger) error {
	return m.Called(ctx, passenger).Error(0)
}

func (m *mockPassengerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestPassengerFromCreateRequest_Defaults(t *testing.T) {
	now := time.Now()
	blank := "   "

	passenger := passengerFromCreateRequest(&request.CreatePassengerRequest{
		FullName:    "Jordan Lee",
		Email:       "jordan@example.com",
		Nationality: &blank,
	}, now)

	assert.Equal(t, entity.DefaultNationality, passenger.Nationality)
	require.NotNil(t, passenger.Email)
	assert.Equal(t, "jordan@example.com", *passenger.Email)
	assert.Nil(t, passenger.Phone)
	assert.Nil(t, passenger.IdentityNumber)
	assert.NotEqual(t, uuid.Nil, passenger.ID)
}

func TestBulkCreatePassengers_RejectsInBatchDuplicates(t *testing.T) {
	repo := new(mockPassengerRepo)
	repo.On("FindExistingEmails", mock.Anything, []string{"a@example.com", "b@example.com"}).
		Return([]string{}, nil)

	service := NewPassengerService(nil, &repository.Repository{Passenger: repo}, zap.NewNop())

	_, err := service.BulkCreatePassengers(context.Background(), &request.BulkCreatePassengersRequest{
		Passengers: []request.CreatePassengerRequest{
			{FullName: "A", Email: "a@example.com"},
			{FullName: "B", Email: "b@example.com"},
			{FullName: "A again", Email: "a@example.com"},
		},
	})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Problems, 1)
	assert.Contains(t, validationErr.Problems[0], "duplicates entry 0")

	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestBulkCreatePassengers_CollectsAllProblems(t *testing.T) {
	repo := new(mockPassengerRepo)
	repo.On("FindExistingEmails", mock.Anything, mock.Anything).
		Return([]string{"taken@example.com"}, nil)

	service := NewPassengerService(nil, &repository.Repository{Passenger: repo}, zap.NewNop())

	_, err := service.BulkCreatePassengers(context.Background(), &request.BulkCreatePassengersRequest{
		Passengers: []request.CreatePassengerRequest{
			{FullName: "A", Email: "taken@example.com"},
			{FullName: "B", Email: "fresh@example.com"},
			{FullName: "B again", Email: "fresh@example.com"},
		},
	})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	// One in-batch duplicate plus one already-registered email, reported together.
	assert.Len(t, validationErr.Problems, 2)
}
