package domain

import "errors"

var (
	// ErrUserExists signals an idempotent user create that matched an
	// existing email.
	ErrUserExists = errors.New("user already exists")

	// ErrEnrollmentExists signals a duplicate (student_email, class_name)
	// enrollment.
	ErrEnrollmentExists = errors.New("class already selected")

	// ErrInvalidID signals a path identifier that is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidRole signals a role value outside the assignable set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidPaymentStatus signals an unknown enrollment payment status.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
