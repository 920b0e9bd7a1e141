package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id int64) (*ports.UserView, error) {
			if id != 1 {
				return nil, domain.ErrUserNotFound
			}
			return &ports.UserView{ID: 1, Email: "a@b.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	rec, err := serve(t, h.Get, request{method: http.MethodGet, target: "/users/1", params: map[string]string{"userId": "1"}})
	if err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
	}

	_, err = serve(t, h.Get, request{method: http.MethodGet, target: "/users/2", params: map[string]string{"userId": "2"}})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	caller := domain.Identity{UserID: 1, Role: domain.RoleUser}
	called := false
	stub := &stubUserService{
		changePasswordFn: func(ctx context.Context, id int64, oldPassword, newPassword string) error {
			called = true
			if id != 1 || oldPassword != "Old12345" || newPassword != "New12345" {
				t.Fatalf("unexpected args: %d %s %s", id, oldPassword, newPassword)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	rec, err := serve(t, h.ChangePassword, request{
		method:   http.MethodPut,
		target:   "/users",
		body:     `{"oldPassword":"Old12345","newPassword":"New12345"}`,
		identity: &caller,
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected service call and 200, got %v %d", called, rec.Code)
	}
}

func TestUserHandler_ChangePassword_WeakPassword(t *testing.T) {
	caller := domain.Identity{UserID: 1, Role: domain.RoleUser}
	h := NewUserHandler(&stubUserService{})

	for _, pw := range []string{"short1A", "nouppercase1", "NoDigitsHere"} {
		_, err := serve(t, h.ChangePassword, request{
			method:   http.MethodPut,
			target:   "/users",
			body:     `{"oldPassword":"Old12345","newPassword":"` + pw + `"}`,
			identity: &caller,
		})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("%s: expected invalid request, got %v", pw, err)
		}
	}
}
