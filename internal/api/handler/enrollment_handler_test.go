package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

type stubEnrollmentService struct {
	conflict   bool
	deleted    int64
	lastEmail  string
	lastStatus domain.PaymentStatus
	lastFields map[string]any
}

func (s *stubEnrollmentService) Select(_ context.Context, e *domain.Enrollment) (string, error) {
	if s.conflict {
		return "", domain.ErrEnrollmentExists
	}
	return "enroll-1", nil
}

func (s *stubEnrollmentService) Get(context.Context, string) (*domain.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) ListByStatus(_ context.Context, email string, status domain.PaymentStatus) ([]*domain.Enrollment, error) {
	s.lastEmail = email
	s.lastStatus = status
	return []*domain.Enrollment{}, nil
}

func (s *stubEnrollmentService) Update(_ context.Context, _ string, fields map[string]any) (ports.UpdateResult, error) {
	s.lastFields = fields
	return ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubEnrollmentService) Remove(context.Context, string) (ports.DeleteResult, error) {
	return ports.DeleteResult{DeletedCount: s.deleted}, nil
}

func TestEnrollmentHandler_Select(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, rec := newTestContext(http.MethodPost, "/enrolls",
		`{"class_name":"Knife Skills","student_email":"s@x.com","price":25}`)

	if err := h.Select(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEnrollmentHandler_Select_Duplicate(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{conflict: true})
	c, _ := newTestContext(http.MethodPost, "/enrolls",
		`{"class_name":"Knife Skills","student_email":"s@x.com"}`)

	// The duplicate propagates to the central error handler, which renders 400.
	err := h.Select(c)
	if err != domain.ErrEnrollmentExists {
		t.Fatalf("expected ErrEnrollmentExists, got %v", err)
	}
}

func TestEnrollmentHandler_ListSelected(t *testing.T) {
	svc := &stubEnrollmentService{}
	h := NewEnrollmentHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/enrolls/selected?email=s@x.com", "")

	if err := h.ListSelected(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "s@x.com" || svc.lastStatus != domain.PaymentSelected {
		t.Fatalf("query not passed through: %q %q", svc.lastEmail, svc.lastStatus)
	}
}

func TestEnrollmentHandler_Remove_Absent(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{deleted: 0})
	c, rec := newTestContext(http.MethodDelete, "/enrolls/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("6532a0a1b2c3d4e5f6a7b8c9")

	if err := h.Remove(c); err != nil {
		t.Fatalf("absent id must not error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res ports.DeleteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected deleted_count 0, got %d", res.DeletedCount)
	}
}

func TestEnrollmentHandler_Update_EmptyBody(t *testing.T) {
	h := NewEnrollmentHandler(&stubEnrollmentService{})
	c, _ := newTestContext(http.MethodPatch, "/enrolls/abc", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("6532a0a1b2c3d4e5f6a7b8c9")

	err := h.Update(c)
	if err == nil {
		t.Fatalf("expected error for empty update")
	}
}

func TestEnrollmentHandler_Update_BodyFieldsOnly(t *testing.T) {
	svc := &stubEnrollmentService{}
	h := NewEnrollmentHandler(svc)
	c, rec := newTestContext(http.MethodPatch, "/enrolls/abc", `{"payment_status":"enrolled"}`)
	c.SetParamNames("id")
	c.SetParamValues("6532a0a1b2c3d4e5f6a7b8c9")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// The :id path param must not leak into the merged field set.
	if len(svc.lastFields) != 1 {
		t.Fatalf("expected only the body field, got %v", svc.lastFields)
	}
	if svc.lastFields["payment_status"] != "enrolled" {
		t.Fatalf("body field not passed through: %v", svc.lastFields)
	}
}
