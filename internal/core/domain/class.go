package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus represents the approval state of a class.
type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approve"
	ClassDenied   ClassStatus = "denied"
)

// Class is a course offered by an instructor. Duplicate classes are allowed;
// there is no uniqueness constraint on any class field.
type Class struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	InstructorName  string             `json:"instructor_name,omitempty" bson:"instructor_name,omitempty"`
	InstructorEmail string             `json:"instructor_email" bson:"instructor_email"`
	AvailableSeats  int                `json:"available_seats" bson:"available_seats"`
	Price           float64            `json:"price" bson:"price"`
	EnrolledStudent int                `json:"enrolled_student" bson:"enrolled_student"`
	Status          ClassStatus        `json:"status" bson:"status"`
	Feedback        string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt       time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
