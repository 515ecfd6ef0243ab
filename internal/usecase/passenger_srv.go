package usecase

import (
	"context"
	"fmt"
	"strings"
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

type PassengerService interface {
	CreatePassenger(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error)
	BulkCreatePassengers(ctx context.Context, req *request.BulkCreatePassengersRequest) (*response.BulkCreateResponse[response.PassengerResponse], error)
	GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error)
	GetAllPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error)
	UpdatePassenger(ctx context.Context, passengerID string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error)
	DeletePassenger(ctx context.Context, passengerID string) error
}

type passengerService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewPassengerService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) PassengerService {
	return &passengerService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "passenger")),
	}
}

func passengerFromCreateRequest(req *request.CreatePassengerRequest, now time.Time) *entity.Passenger {
	nationality := entity.DefaultNationality
	if req.Nationality != nil && strings.TrimSpace(*req.Nationality) != "" {
		nationality = *req.Nationality
	}

	email := req.Email
	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    req.FullName,
		Email:       &email,
		Nationality: nationality,
	}
	if req.PassportNumber != nil && strings.TrimSpace(*req.PassportNumber) != "" {
		passenger.PassportNumber = req.PassportNumber
	}
	if req.IdentityNumber != nil && strings.TrimSpace(*req.IdentityNumber) != "" {
		passenger.IdentityNumber = req.IdentityNumber
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		passenger.Phone = req.Phone
	}

	return passenger
}

func (s *passengerService) CreatePassenger(ctx context.Context, req *request.CreatePassengerRequest) (*response.PassengerResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create passenger validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	passenger := passengerFromCreateRequest(req, time.Now())

	err := database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		passengers := s.repo.Passenger.WithTx(tx)

		existing, err := passengers.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("email %s: %w", req.Email, ErrDuplicateIdentity)
		}

		if err := passengers.Create(ctx, passenger); err != nil {
			return mapUniqueViolation(err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Create passenger failed", zap.Error(err), zap.String("full_name", req.FullName))
		return nil, err
	}

	s.log.Info("Passenger created",
		zap.String("passenger_id", passenger.ID.String()),
		zap.String("full_name", passenger.FullName),
	)

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

// BulkCreatePassengers is all-or-nothing. The pre-check phase collects every
// problem across the whole batch before a single row is written, so the
// caller gets one complete report instead of fixing entries one at a time.
func (s *passengerService) BulkCreatePassengers(ctx context.Context, req *request.BulkCreatePassengersRequest) (*response.BulkCreateResponse[response.PassengerResponse], error) {
	start := time.Now()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk create passengers validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	var problems []string

	// In-batch duplicate emails
	seen := make(map[string]int, len(req.Passengers))
	emails := make([]string, 0, len(req.Passengers))
	for i, p := range req.Passengers {
		if first, ok := seen[p.Email]; ok {
			problems = append(problems, fmt.Sprintf("entry %d: email %s duplicates entry %d", i, p.Email, first))
			continue
		}
		seen[p.Email] = i
		emails = append(emails, p.Email)
	}

	// Emails already in the store
	existing, err := s.repo.Passenger.FindExistingEmails(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("check existing emails: %w", err)
	}
	for _, email := range existing {
		problems = append(problems, fmt.Sprintf("email %s is already registered", email))
	}

	if len(problems) > 0 {
		s.log.Warn("Bulk create passengers rejected",
			zap.Int("batch_size", len(req.Passengers)),
			zap.Int("problems", len(problems)),
		)
		return nil, newBulkValidationError(problems)
	}

	now := time.Now()
	passengers := make([]*entity.Passenger, len(req.Passengers))
	for i := range req.Passengers {
		passengers[i] = passengerFromCreateRequest(&req.Passengers[i], now)
	}

	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.repo.Passenger.WithTx(tx).CreateBatch(ctx, passengers); err != nil {
			return mapUniqueViolation(err)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Bulk create passengers failed", zap.Error(err), zap.Int("batch_size", len(passengers)))
		return nil, err
	}

	created := make([]response.PassengerResponse, len(passengers))
	for i, p := range passengers {
		created[i] = response.PassengerToResponse(p)
	}

	elapsed := time.Since(start).Milliseconds()
	s.log.Info("Bulk passengers created",
		zap.Int("count", len(created)),
		zap.Int64("elapsed_ms", elapsed),
	)

	return response.NewBulkCreateResponse(created, elapsed), nil
}

func (s *passengerService) GetPassengerByID(ctx context.Context, passengerID string) (*response.PassengerResponse, error) {
	id, err := parseID("passenger", passengerID)
	if err != nil {
		return nil, err
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger: %w", err)
	}
	if passenger == nil {
		return nil, fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
	}

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

func (s *passengerService) GetAllPassengers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PassengerResponse], error) {
	passengers, err := s.repo.Passenger.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get passengers: %w", err)
	}

	total, err := s.repo.Passenger.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count passengers: %w", err)
	}

	passengerResponses := make([]response.PassengerResponse, len(passengers))
	for i, passenger := range passengers {
		passengerResponses[i] = response.PassengerToResponse(passenger)
	}

	return response.NewPaginatedResponse(passengerResponses, req.Page, req.PerPage, total), nil
}

func (s *passengerService) UpdatePassenger(ctx context.Context, passengerID string, req *request.UpdatePassengerRequest) (*response.PassengerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newFieldValidationError(errs)
	}

	id, err := parseID("passenger", passengerID)
	if err != nil {
		return nil, err
	}

	passenger, err := s.repo.Passenger.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get passenger: %w", err)
	}
	if passenger == nil {
		return nil, fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
	}

	email := req.Email
	passenger.FullName = req.FullName
	passenger.Email = &email
	passenger.PassportNumber = req.PassportNumber
	passenger.IdentityNumber = req.IdentityNumber
	passenger.Phone = req.Phone
	if req.Nationality != nil && strings.TrimSpace(*req.Nationality) != "" {
		passenger.Nationality = *req.Nationality
	}
	passenger.UpdatedAt = time.Now()

	if err := s.repo.Passenger.Update(ctx, passenger); err != nil {
		return nil, mapUniqueViolation(err)
	}

	resp := response.PassengerToResponse(passenger)
	return &resp, nil
}

// DeletePassenger refuses to remove a passenger that tickets or a user
// account still point at. The tickets table carries no foreign keys, so the
// store would happily orphan them; this guard is the only thing standing in
// the way.
func (s *passengerService) DeletePassenger(ctx context.Context, passengerID string) error {
	id, err := parseID("passenger", passengerID)
	if err != nil {
		return err
	}

	return database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		passengers := s.repo.Passenger.WithTx(tx)

		passenger, err := passengers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if passenger == nil {
			return fmt.Errorf("passenger %s: %w", passengerID, ErrNotFound)
		}

		ticketCount, err := s.repo.Ticket.WithTx(tx).CountByPassengerID(ctx, id)
		if err != nil {
			return err
		}
		if ticketCount > 0 {
			return fmt.Errorf("passenger %s has %d ticket(s): %w", passengerID, ticketCount, ErrHasDependents)
		}

		user, err := s.repo.User.WithTx(tx).FindByPassengerID(ctx, id)
		if err != nil {
			return err
		}
		if user != nil {
			return fmt.Errorf("passenger %s is linked to user %s: %w", passengerID, user.Username, ErrHasDependents)
		}

		if err := passengers.Delete(ctx, id); err != nil {
			return err
		}

		s.log.Info("Passenger deleted", zap.String("passenger_id", passengerID))
		return nil
	})
}
