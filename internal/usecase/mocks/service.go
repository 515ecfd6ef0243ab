// Package mocks provides testify mocks for the service interfaces,
// used by the handler tests.
package mocks

import (
	"context"

	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockAirlineService struct {
	mock.Mock
}

func (m *MockAirlineService) CreateAirline(ctx context.Context, req *request.CreateAirlineRequest) (*response.AirlineResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirlineResponse), args.Error(1)
}

func (m *MockAirlineService) GetAirlineByID(ctx context.Context, airlineID string) (*response.AirlineResponse, error) {
	args := m.Called(ctx, airlineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirlineResponse), args.Error(1)
}

func (m *MockAirlineService) GetAllAirlines(ctx context.Context) ([]response.AirlineResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.AirlineResponse), args.Error(1)
}

func (m *MockAirlineService) UpdateAirline(ctx context.Context, airlineID string, req *request.UpdateAirlineRequest) (*response.AirlineResponse, error) {
	args := m.Called(ctx, airlineID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AirlineResponse), args.Error(1)
}

func (m *MockAirlineService) DeleteAirline(ctx context.Context, airlineID string) error {
	args := m.Called(ctx, airlineID)
	return args.Error(0)
}

type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) DeleteTicket(ctx context.Context, ticketID string) (*response.DeleteTicketResponse, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.DeleteTicketResponse), args.Error(1)
}

func (m *MockTicketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) GetAllTickets(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.TicketResponse]), args.Error(1)
}

type MockValidatorService struct {
	mock.Mock
}

func (m *MockValidatorService) CheckDatabaseHealth(ctx context.Context) *response.DatabaseHealthResponse {
	args := m.Called(ctx)
	return args.Get(0).(*response.DatabaseHealthResponse)
}
