package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// EnrollmentService implements class selection and enrollment state.
type EnrollmentService interface {
	// Select creates an enrollment in the selected state. A duplicate
	// (student_email, class_name) pair fails with domain.ErrEnrollmentExists.
	Select(ctx context.Context, enrollment *domain.Enrollment) (string, error)
	Get(ctx context.Context, id string) (*domain.Enrollment, error)
	ListByStatus(ctx context.Context, studentEmail string, status domain.PaymentStatus) ([]*domain.Enrollment, error)
	Update(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	Remove(ctx context.Context, id string) (DeleteResult, error)
}
