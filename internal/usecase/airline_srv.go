package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ops/internal/data/entity"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"
	"airline-ops/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AirlineService interface {
	CreateAirline(ctx context.Context, req *request.CreateAirlineRequest) (*response.AirlineResponse, error)
	GetAirlineByID(ctx context.Context, airlineID string) (*response.AirlineResponse, error)
	GetAllAirlines(ctx context.Context) ([]response.AirlineResponse, error)
	UpdateAirline(ctx context.Context, airlineID string, req *request.UpdateAirlineRequest) (*response.AirlineResponse, error)
	DeleteAirline(ctx context.Context, airlineID string) error
}

type airlineService struct {
	airlineRepo repository.AirlineRepository
	log         *zap.Logger
}

func NewAirlineService(airlineRepo repository.AirlineRepository, log *zap.Logger) AirlineService {
	return &airlineService{
		airlineRepo: airlineRepo,
		log:         log.With(zap.String("service", "airline")),
	}
}

func (s *airlineService) CreateAirline(ctx context.Context, req *request.CreateAirlineRequest) (*response.AirlineResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create airline validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	now := time.Now()
	airline := &entity.Airline{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		IataCode:    req.IataCode,
		Country:     req.Country,
		FleetSize:   req.FleetSize,
		FoundedYear: req.FoundedYear,
	}

	if err := s.airlineRepo.Create(ctx, airline); err != nil {
		s.log.Warn("Create airline failed", zap.Error(err), zap.String("name", req.Name))
		return nil, mapUniqueViolation(err)
	}

	s.log.Info("Airline created",
		zap.String("airline_id", airline.ID.String()),
		zap.String("name", airline.Name),
	)

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) GetAirlineByID(ctx context.Context, airlineID string) (*response.AirlineResponse, error) {
	id, err := parseID("airline", airlineID)
	if err != nil {
		return nil, err
	}

	airline, err := s.airlineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airline: %w", err)
	}
	if airline == nil {
		return nil, fmt.Errorf("airline %s: %w", airlineID, ErrNotFound)
	}

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) GetAllAirlines(ctx context.Context) ([]response.AirlineResponse, error) {
	airlines, err := s.airlineRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airlines: %w", err)
	}

	responses := make([]response.AirlineResponse, len(airlines))
	for i, airline := range airlines {
		responses[i] = response.AirlineToResponse(airline)
	}

	return responses, nil
}

func (s *airlineService) UpdateAirline(ctx context.Context, airlineID string, req *request.UpdateAirlineRequest) (*response.AirlineResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newFieldValidationError(errs)
	}

	id, err := parseID("airline", airlineID)
	if err != nil {
		return nil, err
	}

	airline, err := s.airlineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airline: %w", err)
	}
	if airline == nil {
		return nil, fmt.Errorf("airline %s: %w", airlineID, ErrNotFound)
	}

	airline.Name = req.Name
	airline.IataCode = req.IataCode
	airline.Country = req.Country
	airline.FleetSize = req.FleetSize
	airline.FoundedYear = req.FoundedYear
	airline.UpdatedAt = time.Now()

	if err := s.airlineRepo.Update(ctx, airline); err != nil {
		return nil, mapUniqueViolation(err)
	}

	resp := response.AirlineToResponse(airline)
	return &resp, nil
}

func (s *airlineService) DeleteAirline(ctx context.Context, airlineID string) error {
	id, err := parseID("airline", airlineID)
	if err != nil {
		return err
	}

	if err := s.airlineRepo.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("airline %s: %w", airlineID, ErrNotFound)
		}
		return fmt.Errorf("delete airline: %w", err)
	}

	s.log.Info("Airline deleted", zap.String("airline_id", airlineID))
	return nil
}
