package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// PaymentStatus is the lifecycle state of an enrollment. A student first
// selects a class; a successful payment moves it to enrolled via the generic
// partial-update path. There is no reverse transition.
type PaymentStatus string

const (
	PaymentSelected PaymentStatus = "selected"
	PaymentEnrolled PaymentStatus = "enrolled"
)

// IsValidPaymentStatus reports whether s is a known enrollment state.
func IsValidPaymentStatus(s string) bool {
	return PaymentStatus(s) == PaymentSelected || PaymentStatus(s) == PaymentEnrolled
}

// Enrollment links a student to a class. At most one enrollment may exist per
// (student_email, class_name) pair, enforced by a unique index.
type Enrollment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassID         string             `json:"class_id,omitempty" bson:"class_id,omitempty"`
	ClassName       string             `json:"class_name" bson:"class_name"`
	ClassImage      string             `json:"class_image,omitempty" bson:"class_image,omitempty"`
	InstructorEmail string             `json:"instructor_email,omitempty" bson:"instructor_email,omitempty"`
	StudentEmail    string             `json:"student_email" bson:"student_email"`
	Price           float64            `json:"price" bson:"price"`
	PaymentStatus   PaymentStatus      `json:"payment_status" bson:"payment_status"`
}
