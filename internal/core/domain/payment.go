package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed charge. Payments are never
// updated or deleted; history is read most-recent-first.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transaction_id" bson:"transaction_id"`
	Amount        float64            `json:"amount" bson:"amount"`
	ClassNames    []string           `json:"class_names,omitempty" bson:"class_names,omitempty"`
	ClassIDs      []string           `json:"class_ids,omitempty" bson:"class_ids,omitempty"`
	EnrollmentIDs []string           `json:"enrollment_ids,omitempty" bson:"enrollment_ids,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
}
