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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

// Register creates a passenger profile and the user account referencing it
// as one atomic unit. The uniqueness reads run inside the same serializable
// transaction as the inserts, so a concurrent registration with the same
// email either loses the serialization race or hits a unique constraint;
// both surface as ErrDuplicateIdentity and leave nothing behind.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	// 2. Hash password before entering the transaction (bcrypt is slow)
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	// 3. Resolve defaults
	passengerName := req.Username
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		passengerName = *req.Name
	}

	nationality := entity.DefaultNationality
	if req.Nationality != nil && strings.TrimSpace(*req.Nationality) != "" {
		nationality = *req.Nationality
	}

	role := entity.RolePassenger
	if req.Role != nil && *req.Role == string(entity.RoleAdmin) {
		role = entity.RoleAdmin
	}

	now := time.Now()
	email := req.Email

	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:    passengerName,
		Email:       &email,
		Nationality: nationality,
	}
	if req.IdentityNumber != nil && strings.TrimSpace(*req.IdentityNumber) != "" {
		passenger.IdentityNumber = req.IdentityNumber
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		passenger.Phone = req.Phone
	}

	passengerID := passenger.ID
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		PassengerID:  &passengerID,
	}

	// 4. Atomic unit: uniqueness checks + both inserts
	err = database.RunSerializable(ctx, s.db, func(tx pgx.Tx) error {
		users := s.repo.User.WithTx(tx)
		passengers := s.repo.Passenger.WithTx(tx)

		existing, err := users.FindByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("username %s: %w", req.Username, ErrDuplicateIdentity)
		}

		existing, err = users.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("email %s: %w", req.Email, ErrDuplicateIdentity)
		}

		existingPassenger, err := passengers.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if existingPassenger != nil {
			return fmt.Errorf("passenger email %s: %w", req.Email, ErrDuplicateIdentity)
		}

		if passenger.IdentityNumber != nil {
			existingPassenger, err = passengers.FindByIdentityNumber(ctx, *passenger.IdentityNumber)
			if err != nil {
				return err
			}
			if existingPassenger != nil {
				return fmt.Errorf("identity number: %w", ErrDuplicateIdentity)
			}
		}

		if passenger.Phone != nil {
			existingPassenger, err = passengers.FindByPhone(ctx, *passenger.Phone)
			if err != nil {
				return err
			}
			if existingPassenger != nil {
				return fmt.Errorf("phone number: %w", ErrDuplicateIdentity)
			}
		}

		if err := passengers.Create(ctx, passenger); err != nil {
			return mapUniqueViolation(err)
		}

		if err := users.Create(ctx, user); err != nil {
			return mapUniqueViolation(err)
		}

		return nil
	})
	if err != nil {
		s.log.Warn("Registration failed",
			zap.Error(err),
			zap.String("username", req.Username),
		)
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("passenger_id", passengerID.String()),
		zap.String("role", string(role)),
	)

	return &response.RegisterResponse{
		User:        response.UserToResponse(user),
		PassengerID: passengerID.String(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, newFieldValidationError(errs)
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	resp := &response.LoginResponse{
		User: response.UserToResponse(user),
	}

	// 4. Attach linked passenger profile when present
	if user.PassengerID != nil {
		passenger, err := s.repo.Passenger.FindByID(ctx, *user.PassengerID)
		if err != nil {
			s.log.Warn("Failed to load linked passenger",
				zap.Error(err),
				zap.String("user_id", user.ID.String()),
			)
		} else if passenger != nil {
			p := response.PassengerToResponse(passenger)
			resp.Passenger = &p
		}
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return resp, nil
}
