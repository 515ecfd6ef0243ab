package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ops/internal/data/entity"
	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"
	"airline-ops/pkg/database"
	"airline-ops/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AircraftService interface {
	CreateAircraft(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error)
	BulkCreateAircraft(ctx context.Context, req *request.BulkCreateAircraftRequest) (*response.BulkCreateResponse[response.AircraftResponse], error)
	GetAircraftByID(ctx context.Context, aircraftID string) (*response.AircraftResponse, error)
	GetAllAircraft(ctx context.Context) ([]response.AircraftResponse, error)
	UpdateAircraft(ctx context.Context, aircraftID string, req *request.UpdateAircraftRequest) (*response.AircraftResponse, error)
	DeleteAircraft(ctx context.Context, aircraftID string) error
}

type aircraftService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewAircraftService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) AircraftService {
	return &aircraftService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "aircraft")),
	}
}

func aircraftFromCreateRequest(req *request.CreateAircraftRequest, airlineID uuid.UUID, now time.Time) *entity.Aircraft {
	status := entity.AircraftStatusActive
	if req.Status != "" {
		status = entity.AircraftStatus(req.Status)
	}

	return &entity.Aircraft{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		AirlineID:          airlineID,
		Model:              req.Model,
		SeatCapacity:       req.SeatCapacity,
		RegistrationNumber: req.RegistrationNumber,
		Status:             status,
	}
}

func (s *aircraftService) CreateAircraft(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create aircraft validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	airlineID, err := parseID("airline", req.AirlineID)
	if err != nil {
		return nil, err
	}

	aircraft := aircraftFromCreateRequest(req, airlineID, time.Now())

	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		airline, err := s.repo.Airline.WithTx(tx).FindByID(ctx, airlineID)
		if err != nil {
			return err
		}
		if airline == nil {
			return fmt.Errorf("airline %s: %w", airlineID.String(), ErrNotFound)
		}

		aircraftRepo := s.repo.Aircraft.WithTx(tx)

		existing, err := aircraftRepo.FindByRegistration(ctx, req.RegistrationNumber)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("registration %s: %w", req.RegistrationNumber, ErrDuplicateKey)
		}

		if err := aircraftRepo.Create(ctx, aircraft); err != nil {
			return mapUniqueViolation(err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Create aircraft failed",
			zap.Error(err),
			zap.String("registration_number", req.RegistrationNumber),
		)
		return nil, err
	}

	s.log.Info("Aircraft created",
		zap.String("aircraft_id", aircraft.ID.String()),
		zap.String("registration_number", aircraft.RegistrationNumber),
	)

	resp := response.AircraftToResponse(aircraft)
	return &resp, nil
}

// BulkCreateAircraft inserts the whole batch or none of it. Pre-checks
// collect every problem (in-batch duplicate registrations, registrations
// already in the store, unknown airlines) before the write phase, then one
// transaction covers all inserts.
func (s *aircraftService) BulkCreateAircraft(ctx context.Context, req *request.BulkCreateAircraftRequest) (*response.BulkCreateResponse[response.AircraftResponse], error) {
	start := time.Now()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk create aircraft validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	var problems []string

	airlineIDs := make([]uuid.UUID, 0, len(req.Aircraft))
	seenAirlines := make(map[uuid.UUID]bool)
	parsed := make([]uuid.UUID, len(req.Aircraft))

	seenRegs := make(map[string]int, len(req.Aircraft))
	regs := make([]string, 0, len(req.Aircraft))

	for i, a := range req.Aircraft {
		id, err := uuid.Parse(a.AirlineID)
		if err != nil {
			problems = append(problems, fmt.Sprintf("entry %d: invalid airline ID %s", i, a.AirlineID))
		} else {
			parsed[i] = id
			if !seenAirlines[id] {
				seenAirlines[id] = true
				airlineIDs = append(airlineIDs, id)
			}
		}

		if first, ok := seenRegs[a.RegistrationNumber]; ok {
			problems = append(problems, fmt.Sprintf("entry %d: registration %s duplicates entry %d", i, a.RegistrationNumber, first))
		} else {
			seenRegs[a.RegistrationNumber] = i
			regs = append(regs, a.RegistrationNumber)
		}
	}

	if len(airlineIDs) > 0 {
		existing, err := s.repo.Airline.FindExistingIDs(ctx, airlineIDs)
		if err != nil {
			return nil, fmt.Errorf("check airlines: %w", err)
		}
		for _, id := range airlineIDs {
			if !existing[id] {
				problems = append(problems, fmt.Sprintf("airline %s does not exist", id.String()))
			}
		}
	}

	existingRegs, err := s.repo.Aircraft.FindExistingRegistrations(ctx, regs)
	if err != nil {
		return nil, fmt.Errorf("check registrations: %w", err)
	}
	for _, reg := range existingRegs {
		problems = append(problems, fmt.Sprintf("registration %s is already in use", reg))
	}

	if len(problems) > 0 {
		s.log.Warn("Bulk create aircraft rejected",
			zap.Int("batch_size", len(req.Aircraft)),
			zap.Int("problems", len(problems)),
		)
		return nil, newBulkValidationError(problems)
	}

	now := time.Now()
	aircraft := make([]*entity.Aircraft, len(req.Aircraft))
	for i := range req.Aircraft {
		aircraft[i] = aircraftFromCreateRequest(&req.Aircraft[i], parsed[i], now)
	}

	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.repo.Aircraft.WithTx(tx).CreateBatch(ctx, aircraft); err != nil {
			return mapUniqueViolation(err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Bulk create aircraft failed", zap.Error(err), zap.Int("batch_size", len(aircraft)))
		return nil, err
	}

	created := make([]response.AircraftResponse, len(aircraft))
	for i, a := range aircraft {
		created[i] = response.AircraftToResponse(a)
	}

	elapsed := time.Since(start).Milliseconds()
	s.log.Info("Bulk aircraft created",
		zap.Int("count", len(created)),
		zap.Int64("elapsed_ms", elapsed),
	)

	return response.NewBulkCreateResponse(created, elapsed), nil
}

func (s *aircraftService) GetAircraftByID(ctx context.Context, aircraftID string) (*response.AircraftResponse, error) {
	id, err := parseID("aircraft", aircraftID)
	if err != nil {
		return nil, err
	}

	aircraft, err := s.repo.Aircraft.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	if aircraft == nil {
		return nil, fmt.Errorf("aircraft %s: %w", aircraftID, ErrNotFound)
	}

	resp := response.AircraftToResponse(aircraft)
	return &resp, nil
}

func (s *aircraftService) GetAllAircraft(ctx context.Context) ([]response.AircraftResponse, error) {
	aircraft, err := s.repo.Aircraft.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get aircraft: %w", err)
	}

	responses := make([]response.AircraftResponse, len(aircraft))
	for i, a := range aircraft {
		responses[i] = response.AircraftToResponse(a)
	}

	return responses, nil
}

func (s *aircraftService) UpdateAircraft(ctx context.Context, aircraftID string, req *request.UpdateAircraftRequest) (*response.AircraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newFieldValidationError(errs)
	}

	id, err := parseID("aircraft", aircraftID)
	if err != nil {
		return nil, err
	}

	aircraft, err := s.repo.Aircraft.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	if aircraft == nil {
		return nil, fmt.Errorf("aircraft %s: %w", aircraftID, ErrNotFound)
	}

	aircraft.Model = req.Model
	aircraft.SeatCapacity = req.SeatCapacity
	aircraft.RegistrationNumber = req.RegistrationNumber
	aircraft.Status = entity.AircraftStatus(req.Status)
	aircraft.UpdatedAt = time.Now()

	if err := s.repo.Aircraft.Update(ctx, aircraft); err != nil {
		return nil, mapUniqueViolation(err)
	}

	resp := response.AircraftToResponse(aircraft)
	return &resp, nil
}

func (s *aircraftService) DeleteAircraft(ctx context.Context, aircraftID string) error {
	id, err := parseID("aircraft", aircraftID)
	if err != nil {
		return err
	}

	if err := s.repo.Aircraft.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("aircraft %s: %w", aircraftID, ErrNotFound)
		}
		return fmt.Errorf("delete aircraft: %w", err)
	}

	s.log.Info("Aircraft deleted", zap.String("aircraft_id", aircraftID))
	return nil
}
