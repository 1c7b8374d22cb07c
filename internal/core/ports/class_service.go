package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// ClassService implements class catalogue operations.
type ClassService interface {
	Create(ctx context.Context, class *domain.Class) (string, error)
	List(ctx context.Context, instructorEmail string) ([]*domain.Class, error)
	ListApproved(ctx context.Context) ([]*domain.Class, error)
	Get(ctx context.Context, id string) (*domain.Class, error)
	Update(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (UpdateResult, error)
}
