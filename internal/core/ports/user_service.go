package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// UserService implements account operations.
type UserService interface {
	// Create inserts the user unless one with the same email already
	// exists, in which case existed is true and no write happens.
	Create(ctx context.Context, user *domain.User) (insertedID string, existed bool, err error)
	List(ctx context.Context) ([]*domain.User, error)
	ListInstructors(ctx context.Context) ([]*domain.User, error)
	// HasRole reports whether the stored user for email carries the role.
	// An absent user simply yields false.
	HasRole(ctx context.Context, email, role string) (bool, error)
	SetRole(ctx context.Context, id, role string) (UpdateResult, error)
}
