package usecase

import (
	"context"
	"fmt"

	"airline-ops/internal/data/repository"
	"airline-ops/internal/dto/request"
	"airline-ops/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := parseID("user", userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if isRepoNotFound(err) {
			return fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}
