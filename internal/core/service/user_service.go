package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/api/metrics"
	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// UserService implements account operations on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create inserts the user unless the email is already taken. The unique email
// index makes the insert the authoritative check; a duplicate-key result is
// reported as existed=true without a second document being written.
func (s *UserService) Create(ctx context.Context, user *domain.User) (string, bool, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.UsersCreatedTotal.WithLabelValues("exists").Inc()
			return "", true, nil
		}
		return "", false, err
	}

	metrics.UsersCreatedTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("email", user.Email).Msg("user created")
	return id, false, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ListInstructors(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RoleInstructor)
}

// HasRole reports whether the stored user for email carries the role. An
// absent user yields false, not an error.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == role, nil
}

// SetRole assigns one of the known roles to the identified user.
func (s *UserService) SetRole(ctx context.Context, id, role string) (ports.UpdateResult, error) {
	if !domain.IsValidRole(role) {
		return ports.UpdateResult{}, domain.ErrInvalidRole
	}

	res, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return ports.UpdateResult{}, err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("role updated")
	return res, nil
}
