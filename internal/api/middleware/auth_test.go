package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/service"
)

func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(service.NewJWTService("secret", time.Hour))(next)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotReach(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := service.NewJWTService("secret", time.Hour).Issue(&domain.User{ID: 42, Email: "a@b.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec := runAuth(t, token, func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.UserID != 42 || identity.Email != "a@b.com" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runAuth(t, "", mustNotReach(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rec := runAuth(t, "Token abc", mustNotReach(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec := runAuth(t, "Bearer not-a-token", mustNotReach(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := service.NewJWTService("other", time.Hour).Issue(&domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := runAuth(t, token, mustNotReach(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
