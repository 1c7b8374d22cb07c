package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/escoffier/enrollment-system/internal/core/domain"
)

const collectionPayments = "payments"

// PaymentRepository persists payments in the payments collection. Documents
// are append-only; there is no update or delete path.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedHex(res.InsertedID), nil
}

// ListByEmail returns the payments for an email, most recent first. Sorting
// on _id descending follows insertion order because ObjectIDs are
// time-prefixed.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer cur.Close(ctx)

	payments := make([]*domain.Payment, 0)
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

// EnsureIndexes creates the history-query index.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "_id", Value: -1}},
	})
	return err
}
