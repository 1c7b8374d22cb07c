package ports

import (
	"context"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// ClassRepository defines persistence operations on the classes collection.
type ClassRepository interface {
	Insert(ctx context.Context, class *domain.Class) (string, error)
	// FindByID returns (nil, nil) when no class has the given id.
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	// List returns classes sorted by enrolled_student descending. A non-empty
	// instructorEmail restricts the result to that instructor's classes.
	List(ctx context.Context, instructorEmail string) ([]*domain.Class, error)
	ListByStatus(ctx context.Context, status domain.ClassStatus) ([]*domain.Class, error)
	// UpdateFields merges the given fields into the class document ($set).
	UpdateFields(ctx context.Context, id string, fields map[string]any) (UpdateResult, error)
	// UpsertFeedback sets only the feedback field, inserting the document
	// when absent.
	UpsertFeedback(ctx context.Context, id, feedback string) (UpdateResult, error)
}
