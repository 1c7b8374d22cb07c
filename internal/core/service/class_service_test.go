package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

type fakeClassRepo struct {
	inserted   []*domain.Class
	lastFilter string
	lastFields map[string]any
	feedback   map[string]string
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{feedback: make(map[string]string)}
}

func (r *fakeClassRepo) Insert(_ context.Context, class *domain.Class) (string, error) {
	r.inserted = append(r.inserted, class)
	return "class-1", nil
}

func (r *fakeClassRepo) FindByID(context.Context, string) (*domain.Class, error) {
	return nil, nil
}

func (r *fakeClassRepo) List(_ context.Context, instructorEmail string) ([]*domain.Class, error) {
	r.lastFilter = instructorEmail
	return []*domain.Class{}, nil
}

func (r *fakeClassRepo) ListByStatus(context.Context, domain.ClassStatus) ([]*domain.Class, error) {
	return []*domain.Class{}, nil
}

func (r *fakeClassRepo) UpdateFields(_ context.Context, _ string, fields map[string]any) (ports.UpdateResult, error) {
	r.lastFields = fields
	return ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeClassRepo) UpsertFeedback(_ context.Context, id, feedback string) (ports.UpdateResult, error) {
	r.feedback[id] = feedback
	return ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestClassService_Create_Defaults(t *testing.T) {
	repo := newFakeClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), &domain.Class{
		Name:            "Sourdough Basics",
		InstructorEmail: "i@x.com",
		EnrolledStudent: 99, // caller-supplied count is ignored
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != "class-1" {
		t.Fatalf("unexpected id %q", id)
	}

	created := repo.inserted[0]
	if created.Status != domain.ClassPending {
		t.Fatalf("new classes must start pending, got %q", created.Status)
	}
	if created.EnrolledStudent != 0 {
		t.Fatalf("new classes must start with zero enrolled students, got %d", created.EnrolledStudent)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestClassService_List_PassesFilter(t *testing.T) {
	repo := newFakeClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), "i@x.com"); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastFilter != "i@x.com" {
		t.Fatalf("instructor filter not passed through, got %q", repo.lastFilter)
	}
}

func TestClassService_Update_StripsID(t *testing.T) {
	repo := newFakeClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "class-1", map[string]any{
		"_id":             "evil",
		"available_seats": 5,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if _, ok := repo.lastFields["_id"]; ok {
		t.Fatalf("_id must not be writable")
	}
	if repo.lastFields["available_seats"] != 5 {
		t.Fatalf("field merge lost available_seats")
	}
}

func TestClassService_SetFeedback(t *testing.T) {
	repo := newFakeClassRepo()
	svc := NewClassService(repo, zerolog.Nop())

	if _, err := svc.SetFeedback(context.Background(), "class-1", "needs a syllabus"); err != nil {
		t.Fatalf("SetFeedback returned error: %v", err)
	}
	if repo.feedback["class-1"] != "needs a syllabus" {
		t.Fatalf("feedback not stored")
	}
}
