package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
// Lookups return (nil, nil) when no document matches: absence is a policy
// outcome, not an error.
type UserRepository interface {
	// Insert adds a user and returns the generated id. A duplicate email
	// fails with domain.ErrUserExists (unique index).
	Insert(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// SetRole updates only the role field of the user with the given id.
	SetRole(ctx context.Context, id, role string) (UpdateResult, error)
}
