package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

type pairKey struct{ student, class string }

type fakeEnrollmentRepo struct {
	pairs      map[pairKey]bool
	lastFields map[string]any
	deleted    map[string]bool
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{pairs: make(map[pairKey]bool), deleted: make(map[string]bool)}
}

func (r *fakeEnrollmentRepo) Insert(_ context.Context, e *domain.Enrollment) (string, error) {
	key := pairKey{e.StudentEmail, e.ClassName}
	if r.pairs[key] {
		return "", domain.ErrEnrollmentExists
	}
	r.pairs[key] = true
	return "enroll-1", nil
}

func (r *fakeEnrollmentRepo) FindByID(context.Context, string) (*domain.Enrollment, error) {
	return nil, nil
}

func (r *fakeEnrollmentRepo) ListByStudentAndStatus(context.Context, string, domain.PaymentStatus) ([]*domain.Enrollment, error) {
	return []*domain.Enrollment{}, nil
}

func (r *fakeEnrollmentRepo) UpdateFields(_ context.Context, _ string, fields map[string]any) (ports.UpdateResult, error) {
	r.lastFields = fields
	return ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id string) (ports.DeleteResult, error) {
	if r.deleted[id] {
		return ports.DeleteResult{DeletedCount: 0}, nil
	}
	r.deleted[id] = true
	return ports.DeleteResult{DeletedCount: 1}, nil
}

func TestEnrollmentService_Select_DefaultsToSelected(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	svc := NewEnrollmentService(repo, zerolog.Nop())

	enrollment := &domain.Enrollment{StudentEmail: "s@x.com", ClassName: "Knife Skills"}
	id, err := svc.Select(context.Background(), enrollment)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected inserted id")
	}
	if enrollment.PaymentStatus != domain.PaymentSelected {
		t.Fatalf("expected selected status, got %q", enrollment.PaymentStatus)
	}
}

func TestEnrollmentService_Select_Duplicate(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	svc := NewEnrollmentService(repo, zerolog.Nop())

	first := &domain.Enrollment{StudentEmail: "s@x.com", ClassName: "Knife Skills"}
	if _, err := svc.Select(context.Background(), first); err != nil {
		t.Fatalf("first select: %v", err)
	}

	dup := &domain.Enrollment{StudentEmail: "s@x.com", ClassName: "Knife Skills"}
	if _, err := svc.Select(context.Background(), dup); !errors.Is(err, domain.ErrEnrollmentExists) {
		t.Fatalf("expected ErrEnrollmentExists, got %v", err)
	}
	if len(repo.pairs) != 1 {
		t.Fatalf("duplicate must not insert a second record, got %d", len(repo.pairs))
	}

	// Same class for a different student is fine.
	other := &domain.Enrollment{StudentEmail: "t@x.com", ClassName: "Knife Skills"}
	if _, err := svc.Select(context.Background(), other); err != nil {
		t.Fatalf("different student must be allowed: %v", err)
	}
}

func TestEnrollmentService_Update_StatusTransition(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	svc := NewEnrollmentService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "enroll-1", map[string]any{"payment_status": "enrolled"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.lastFields["payment_status"] != "enrolled" {
		t.Fatalf("status field not merged")
	}
}

func TestEnrollmentService_Update_UnknownStatus(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	svc := NewEnrollmentService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "enroll-1", map[string]any{"payment_status": "refunded"})
	if !errors.Is(err, domain.ErrInvalidPaymentStatus) {
		t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
	}
	if repo.lastFields != nil {
		t.Fatalf("repo must not be touched for invalid status")
	}
}

func TestEnrollmentService_Remove_AbsentIsZeroEffect(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	repo.deleted["gone"] = true
	svc := NewEnrollmentService(repo, zerolog.Nop())

	res, err := svc.Remove(context.Background(), "gone")
	if err != nil {
		t.Fatalf("Remove of absent id must not error, got %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected zero-effect delete, got %d", res.DeletedCount)
	}
}
