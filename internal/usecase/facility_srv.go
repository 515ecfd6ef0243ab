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

// FacilityService covers the airport-side resources flights are pinned to:
// terminals and the gates inside them.
type FacilityService interface {
	CreateTerminal(ctx context.Context, req *request.CreateTerminalRequest) (*response.TerminalResponse, error)
	GetAllTerminals(ctx context.Context) ([]response.TerminalResponse, error)
	DeleteTerminal(ctx context.Context, terminalID string) error

	CreateGate(ctx context.Context, req *request.CreateGateRequest) (*response.GateResponse, error)
	GetAllGates(ctx context.Context) ([]response.GateResponse, error)
	GetGatesByTerminal(ctx context.Context, terminalID string) ([]response.GateResponse, error)
	DeleteGate(ctx context.Context, gateID string) error
}

type facilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFacilityService(repo *repository.Repository, log *zap.Logger) FacilityService {
	return &facilityService{
		repo: repo,
		log:  log.With(zap.String("service", "facility")),
	}
}

func (s *facilityService) CreateTerminal(ctx context.Context, req *request.CreateTerminalRequest) (*response.TerminalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create terminal validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	now := time.Now()
	terminal := &entity.Terminal{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Terminal.Create(ctx, terminal); err != nil {
		s.log.Warn("Create terminal failed", zap.Error(err), zap.String("name", req.Name))
		return nil, mapUniqueViolation(err)
	}

	s.log.Info("Terminal created",
		zap.String("terminal_id", terminal.ID.String()),
		zap.String("name", terminal.Name),
	)

	resp := response.TerminalToResponse(terminal)
	return &resp, nil
}

func (s *facilityService) GetAllTerminals(ctx context.Context) ([]response.TerminalResponse, error) {
	terminals, err := s.repo.Terminal.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get terminals: %w", err)
	}

	responses := make([]response.TerminalResponse, len(terminals))
	for i, terminal := range terminals {
		responses[i] = response.TerminalToResponse(terminal)
	}

	return responses, nil
}

// DeleteTerminal refuses while gates still reference the terminal.
func (s *facilityService) DeleteTerminal(ctx context.Context, terminalID string) error {
	id, err := parseID("terminal", terminalID)
	if err != nil {
		return err
	}

	gates, err := s.repo.Gate.FindByTerminalID(ctx, id)
	if err != nil {
		return fmt.Errorf("check terminal gates: %w", err)
	}
	if len(gates) > 0 {
		return fmt.Errorf("terminal %s has %d gate(s): %w", terminalID, len(gates), ErrHasDependents)
	}

	if err := s.repo.Terminal.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("terminal %s: %w", terminalID, ErrNotFound)
		}
		return fmt.Errorf("delete terminal: %w", err)
	}

	s.log.Info("Terminal deleted", zap.String("terminal_id", terminalID))
	return nil
}

func (s *facilityService) CreateGate(ctx context.Context, req *request.CreateGateRequest) (*response.GateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create gate validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	terminalID, err := parseID("terminal", req.TerminalID)
	if err != nil {
		return nil, err
	}

	terminal, err := s.repo.Terminal.FindByID(ctx, terminalID)
	if err != nil {
		return nil, fmt.Errorf("get terminal: %w", err)
	}
	if terminal == nil {
		return nil, fmt.Errorf("terminal %s: %w", req.TerminalID, ErrNotFound)
	}

	status := entity.GateStatusOpen
	if req.Status != "" {
		status = entity.GateStatus(req.Status)
	}

	now := time.Now()
	gate := &entity.Gate{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TerminalID:   terminalID,
		Number:       req.Number,
		Status:       status,
		AreaCapacity: req.AreaCapacity,
	}

	if err := s.repo.Gate.Create(ctx, gate); err != nil {
		s.log.Warn("Create gate failed", zap.Error(err), zap.String("gate_number", req.Number))
		return nil, mapUniqueViolation(err)
	}

	s.log.Info("Gate created",
		zap.String("gate_id", gate.ID.String()),
		zap.String("terminal_id", terminalID.String()),
		zap.String("gate_number", gate.Number),
	)

	resp := response.GateToResponse(gate)
	return &resp, nil
}

func (s *facilityService) GetAllGates(ctx context.Context) ([]response.GateResponse, error) {
	gates, err := s.repo.Gate.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get gates: %w", err)
	}

	responses := make([]response.GateResponse, len(gates))
	for i, gate := range gates {
		responses[i] = response.GateToResponse(gate)
	}

	return responses, nil
}

func (s *facilityService) GetGatesByTerminal(ctx context.Context, terminalID string) ([]response.GateResponse, error) {
	id, err := parseID("terminal", terminalID)
	if err != nil {
		return nil, err
	}

	terminal, err := s.repo.Terminal.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get terminal: %w", err)
	}
	if terminal == nil {
		return nil, fmt.Errorf("terminal %s: %w", terminalID, ErrNotFound)
	}

	gates, err := s.repo.Gate.FindByTerminalID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get terminal gates: %w", err)
	}

	responses := make([]response.GateResponse, len(gates))
	for i, gate := range gates {
		responses[i] = response.GateToResponse(gate)
	}

	return responses, nil
}

func (s *facilityService) DeleteGate(ctx context.Context, gateID string) error {
	id, err := parseID("gate", gateID)
	if err != nil {
		return err
	}

	if err := s.repo.Gate.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("gate %s: %w", gateID, ErrNotFound)
		}
		return fmt.Errorf("delete gate: %w", err)
	}

	s.log.Info("Gate deleted", zap.String("gate_id", gateID))
	return nil
}
