package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// stubUserRepo satisfies ports.UserRepository; only FindByEmail matters here.
type stubUserRepo struct {
	users   map[string]*domain.User
	queries int
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.queries++
	return r.users[email], nil
}

func (r *stubUserRepo) Insert(context.Context, *domain.User) (string, error) { return "", nil }
func (r *stubUserRepo) List(context.Context) ([]*domain.User, error)         { return nil, nil }
func (r *stubUserRepo) ListByRole(context.Context, string) ([]*domain.User, error) {
	return nil, nil
}
func (r *stubUserRepo) SetRole(context.Context, string, string) (ports.UpdateResult, error) {
	return ports.UpdateResult{}, nil
}

func guardContext(email string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"admin@x.com": {Email: "admin@x.com", Role: domain.RoleAdmin},
	}}
	c, rec := guardContext("admin@x.com")

	called := false
	handler := RequireAdmin(repo)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"student@x.com": {Email: "student@x.com", Role: domain.RoleStudent},
	}}
	c, _ := guardContext("student@x.com")

	handler := RequireAdmin(repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestRequireRole_UnknownUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	c, _ := guardContext("ghost@x.com")

	err := RequireInstructor(repo)(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
	if repo.queries != 1 {
		t.Fatalf("expected one store query, got %d", repo.queries)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	c, _ := guardContext("")

	err := RequireAdmin(repo)(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if repo.queries != 0 {
		t.Fatalf("store must not be queried without an identity, got %d queries", repo.queries)
	}
}
