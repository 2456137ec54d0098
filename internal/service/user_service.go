package service

import (
	"context"
	"errors"
	"time"

	"userbook/internal/dto"
	"userbook/internal/models"
	"userbook/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// ValidationError reports the store-level constraints a write failed,
// keyed by field name. The caller re-renders the originating form with
// these messages and the rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "user validation failed"
}

// UsersRepository is the store contract the service consumes. The pgx
// implementation lives in internal/repository; tests supply an in-memory fake.
type UsersRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService struct {
	users  UsersRepository
	logger *zap.Logger
}

func NewUserService(users UsersRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, params dto.UserParams) (*models.User, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New(),
		Username:  params.Username,
		Email:     params.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, params dto.UserParams) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := validateParams(params); err != nil {
		return nil, err
	}

	user.Username = params.Username
	user.Email = params.Email
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.logger.Info("user updated", zap.String("id", user.ID.String()))

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info("user deleted", zap.String("id", id.String()))

	return nil
}

func validateParams(params dto.UserParams) error {
	fields := make(map[string]string)
	if params.Username == "" {
		fields["username"] = "Username can't be blank"
	}
	if params.Email == "" {
		fields["email"] = "Email can't be blank"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
