package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

const collectionEnrolls = "enrolls"

// EnrollmentRepository persists enrollments in the enrolls collection.
type EnrollmentRepository struct {
	col *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{col: db.Collection(collectionEnrolls)}
}

// Insert adds an enrollment document. The unique (student_email, class_name)
// index makes the uniqueness guard atomic: concurrent duplicates lose the
// insert instead of both passing a read-then-write check.
func (r *EnrollmentRepository) Insert(ctx context.Context, enrollment *domain.Enrollment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, enrollment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEnrollmentExists
		}
		return "", fmt.Errorf("insert enrollment: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

// FindByID returns (nil, nil) when no enrollment has the given id.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	oid, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Enrollment
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return &e, nil
}

func (r *EnrollmentRepository) ListByStudentAndStatus(ctx context.Context, studentEmail string, status domain.PaymentStatus) ([]*domain.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"student_email": studentEmail, "payment_status": status})
	if err != nil {
		return nil, fmt.Errorf("find enrollments: %w", err)
	}
	defer cur.Close(ctx)

	enrollments := make([]*domain.Enrollment, 0)
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("decode enrollments: %w", err)
	}
	return enrollments, nil
}

// UpdateFields merges the given fields into the enrollment document. The
// selected→enrolled transition after payment goes through here.
func (r *EnrollmentRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (ports.UpdateResult, error) {
	oid, err := idFilter(id)
	if err != nil {
		return ports.UpdateResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update enrollment: %w", err)
	}
	return ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes by id. An absent document yields a zero DeletedCount, not an
// error.
func (r *EnrollmentRepository) Delete(ctx context.Context, id string) (ports.DeleteResult, error) {
	oid, err := idFilter(id)
	if err != nil {
		return ports.DeleteResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return ports.DeleteResult{}, fmt.Errorf("delete enrollment: %w", err)
	}
	return ports.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// EnsureIndexes creates the unique compound index backing the duplicate
// guard, plus the list-query index.
func (r *EnrollmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "student_email", Value: 1}, {Key: "class_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "student_email", Value: 1}, {Key: "payment_status", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
