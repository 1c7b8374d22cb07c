package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// EnrollmentRepository defines persistence operations on the enrolls
// collection.
type EnrollmentRepository interface {
	// Insert adds an enrollment. A duplicate (student_email, class_name)
	// pair fails with domain.ErrEnrollmentExists (unique compound index).
	Insert(ctx context.Context, enrollment *domain.Enrollment) (string, error)
	// FindByID returns (nil, nil) when no enrollment has the given id.
	FindByID(ctx context.Context, id string) (*domain.Enrollment, error)
	ListByStudentAndStatus(ctx context.Context, studentEmail string, status domain.PaymentStatus) ([]*domain.Enrollment, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	Delete(ctx context.Context, id string) (DeleteResult, error)
}
