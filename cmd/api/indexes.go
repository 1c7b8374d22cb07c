package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	mongorepo "github.com/escoffier/enrollment-system/internal/infrastructure/db/mongo"
)

// ensureIndexes creates all collection indexes at startup. The unique indexes
// on users.email and enrolls (student_email, class_name) are what make the
// create guards atomic, so the process refuses to start without them.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := mongorepo.NewClassRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("classes indexes: %w", err)
	}
	if err := mongorepo.NewEnrollmentRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("enrolls indexes: %w", err)
	}
	if err := mongorepo.NewPaymentRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("payments indexes: %w", err)
	}
	return nil
}
