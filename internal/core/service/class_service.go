package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/api/metrics"
	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// ClassService implements catalogue operations on top of the class repository.
type ClassService struct {
	repo   ports.ClassRepository
	logger zerolog.Logger
}

func NewClassService(repo ports.ClassRepository, logger zerolog.Logger) *ClassService {
	return &ClassService{repo: repo, logger: logger}
}

// Create inserts a new class. New classes start pending with zero enrolled
// students; approval happens later through the admin status update.
func (s *ClassService) Create(ctx context.Context, class *domain.Class) (string, error) {
	if class.Status == "" {
		class.Status = domain.ClassPending
	}
	class.EnrolledStudent = 0
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}

	id, err := s.repo.Insert(ctx, class)
	if err != nil {
		return "", err
	}

	metrics.ClassesCreatedTotal.Inc()
	s.logger.Info().Str("class_id", id).Str("instructor_email", class.InstructorEmail).Msg("class created")
	return id, nil
}

func (s *ClassService) List(ctx context.Context, instructorEmail string) ([]*domain.Class, error) {
	return s.repo.List(ctx, instructorEmail)
}

func (s *ClassService) ListApproved(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.ListByStatus(ctx, domain.ClassApproved)
}

func (s *ClassService) Get(ctx context.Context, id string) (*domain.Class, error) {
	return s.repo.FindByID(ctx, id)
}

// Update merges the provided fields into the class. The _id field is never
// writable through this path.
func (s *ClassService) Update(ctx context.Context, id string, fields map[string]any) (ports.UpdateResult, error) {
	delete(fields, "_id")
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *ClassService) SetFeedback(ctx context.Context, id, feedback string) (ports.UpdateResult, error) {
	return s.repo.UpsertFeedback(ctx, id, feedback)
}
