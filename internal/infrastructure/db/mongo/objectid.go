package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

// idFilter parses a path identifier into an _id filter. A malformed hex
// string maps to domain.ErrInvalidID so the API layer can answer 400 instead
// of leaking a driver error.
func idFilter(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// insertedHex renders the id assigned by an insert.
func insertedHex(insertedID any) string {
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", insertedID)
}
