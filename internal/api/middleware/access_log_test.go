package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/core/domain"
)

type captureSink struct {
	entries []domain.AccessLog
}

func (s *captureSink) Enqueue(e domain.AccessLog) { s.entries = append(s.entries, e) }

func TestAccessLog_RecordsIdentity(t *testing.T) {
	var buf bytes.Buffer
	sink := &captureSink{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(IdentityKey, domain.Identity{UserID: 3, Role: domain.RoleAdmin})

	handler := AccessLog(sink, zerolog.New(&buf))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sink.entries))
	}
	got := sink.entries[0]
	if got.UserID != 3 || got.URL != "/admin/users/7" || got.Method != http.MethodPatch {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.RequestedAt.IsZero() {
		t.Fatalf("request time not set")
	}
	if !strings.Contains(buf.String(), `"user_id":3`) {
		t.Fatalf("log line missing user id: %s", buf.String())
	}
}

func TestAccessLog_ContinuesWithoutIdentity(t *testing.T) {
	var buf bytes.Buffer
	sink := &captureSink{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/admin/comments/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AccessLog(sink, zerolog.New(&buf))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !called {
		t.Fatalf("next handler not called")
	}
	if len(sink.entries) != 1 || sink.entries[0].UserID != 0 {
		t.Fatalf("unexpected entries: %+v", sink.entries)
	}
	if !strings.Contains(buf.String(), `"user_id":""`) {
		t.Fatalf("log line missing empty user: %s", buf.String())
	}
}
