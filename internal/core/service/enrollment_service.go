package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/api/metrics"
	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// EnrollmentService implements class selection on top of the enrollment
// repository.
type EnrollmentService struct {
	repo   ports.EnrollmentRepository
	logger zerolog.Logger
}

func NewEnrollmentService(repo ports.EnrollmentRepository, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{repo: repo, logger: logger}
}

// Select creates an enrollment in the selected state. A student cannot select
// the same class twice; the repository's unique index enforces that
// atomically.
func (s *EnrollmentService) Select(ctx context.Context, enrollment *domain.Enrollment) (string, error) {
	if enrollment.PaymentStatus == "" {
		enrollment.PaymentStatus = domain.PaymentSelected
	}

	id, err := s.repo.Insert(ctx, enrollment)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentExists) {
			metrics.SelectionsTotal.WithLabelValues("conflict").Inc()
		}
		return "", err
	}

	metrics.SelectionsTotal.WithLabelValues("created").Inc()
	s.logger.Info().
		Str("student_email", enrollment.StudentEmail).
		Str("class_name", enrollment.ClassName).
		Msg("class selected")
	return id, nil
}

func (s *EnrollmentService) Get(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EnrollmentService) ListByStatus(ctx context.Context, studentEmail string, status domain.PaymentStatus) ([]*domain.Enrollment, error) {
	return s.repo.ListByStudentAndStatus(ctx, studentEmail, status)
}

// Update merges the provided fields into the enrollment. The caller is
// trusted to set payment_status after a successful payment; only the value
// itself is checked against the known states. The _id field is never writable.
func (s *EnrollmentService) Update(ctx context.Context, id string, fields map[string]any) (ports.UpdateResult, error) {
	delete(fields, "_id")
	if raw, ok := fields["payment_status"]; ok {
		status, ok := raw.(string)
		if !ok || !domain.IsValidPaymentStatus(status) {
			return ports.UpdateResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidPaymentStatus, raw)
		}
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

// Remove deletes the enrollment. Removing an absent id reports zero effect.
func (s *EnrollmentService) Remove(ctx context.Context, id string) (ports.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
