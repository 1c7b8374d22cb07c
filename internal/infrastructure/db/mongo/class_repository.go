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

const collectionClasses = "classes"

// ClassRepository persists classes in the classes collection.
type ClassRepository struct {
	col *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{col: db.Collection(collectionClasses)}
}

// Insert adds a class document. Duplicates are allowed.
func (r *ClassRepository) Insert(ctx context.Context, class *domain.Class) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, class)
	if err != nil {
		return "", fmt.Errorf("insert class: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

// FindByID returns (nil, nil) when no class has the given id.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*domain.Class, error) {
	oid, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Class
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return &c, nil
}

// List returns classes sorted by enrolled_student descending, optionally
// restricted to one instructor.
func (r *ClassRepository) List(ctx context.Context, instructorEmail string) ([]*domain.Class, error) {
	filter := bson.M{}
	if instructorEmail != "" {
		filter["instructor_email"] = instructorEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "enrolled_student", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *ClassRepository) ListByStatus(ctx context.Context, status domain.ClassStatus) ([]*domain.Class, error) {
	return r.find(ctx, bson.M{"status": status}, options.Find())
}

func (r *ClassRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer cur.Close(ctx)

	classes := make([]*domain.Class, 0)
	if err := cur.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}

// UpdateFields merges the given fields into the class document.
func (r *ClassRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (ports.UpdateResult, error) {
	oid, err := idFilter(id)
	if err != nil {
		return ports.UpdateResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update class: %w", err)
	}
	return ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// UpsertFeedback sets only the feedback field, inserting when absent.
func (r *ClassRepository) UpsertFeedback(ctx context.Context, id, feedback string) (ports.UpdateResult, error) {
	oid, err := idFilter(id)
	if err != nil {
		return ports.UpdateResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"feedback": feedback}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("upsert feedback: %w", err)
	}
	out := ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if res.UpsertedID != nil {
		out.UpsertedID = insertedHex(res.UpsertedID)
	}
	return out, nil
}

// EnsureIndexes creates the query indexes used by List and ListByStatus.
func (r *ClassRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "instructor_email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "enrolled_student", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
