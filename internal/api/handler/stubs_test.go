package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/api/middleware"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

type request struct {
	method   string
	target   string
	body     string
	params   map[string]string
	identity *domain.Identity
}

// serve runs h against a fresh echo context and returns the recorder plus the
// error the handler returned, if any.
func serve(t *testing.T, h echo.HandlerFunc, r request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for k, v := range r.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if r.identity != nil {
		c.Set(middleware.IdentityKey, *r.identity)
	}
	return rec, h(c)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

type stubAuthService struct {
	signupFn func(ctx context.Context, email, password, roleName string) (string, error)
	signinFn func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password, roleName string) (string, error) {
	return s.signupFn(ctx, email, password, roleName)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (string, error) {
	return s.signinFn(ctx, email, password)
}

type stubTodoService struct {
	createFn func(ctx context.Context, identity domain.Identity, title, contents string) (*ports.TodoView, error)
	getFn    func(ctx context.Context, id int64) (*ports.TodoView, error)
	listFn   func(ctx context.Context, page, size int) (*ports.TodoPage, error)
}

func (s *stubTodoService) CreateTodo(ctx context.Context, identity domain.Identity, title, contents string) (*ports.TodoView, error) {
	return s.createFn(ctx, identity, title, contents)
}

func (s *stubTodoService) GetTodo(ctx context.Context, id int64) (*ports.TodoView, error) {
	return s.getFn(ctx, id)
}

func (s *stubTodoService) ListTodos(ctx context.Context, page, size int) (*ports.TodoPage, error) {
	return s.listFn(ctx, page, size)
}

type stubManagerService struct {
	assignFn func(ctx context.Context, identity domain.Identity, todoID, managerUserID int64) (*ports.ManagerView, error)
	listFn   func(ctx context.Context, todoID int64) ([]ports.ManagerView, error)
	removeFn func(ctx context.Context, callerID, todoID, managerID int64) error
}

func (s *stubManagerService) AssignManager(ctx context.Context, identity domain.Identity, todoID, managerUserID int64) (*ports.ManagerView, error) {
	return s.assignFn(ctx, identity, todoID, managerUserID)
}

func (s *stubManagerService) ListManagers(ctx context.Context, todoID int64) ([]ports.ManagerView, error) {
	return s.listFn(ctx, todoID)
}

func (s *stubManagerService) RemoveManager(ctx context.Context, callerID, todoID, managerID int64) error {
	return s.removeFn(ctx, callerID, todoID, managerID)
}

type stubCommentService struct {
	addFn  func(ctx context.Context, identity domain.Identity, todoID int64, contents string) (*ports.CommentView, error)
	listFn func(ctx context.Context, todoID int64) ([]ports.CommentView, error)
}

func (s *stubCommentService) AddComment(ctx context.Context, identity domain.Identity, todoID int64, contents string) (*ports.CommentView, error) {
	return s.addFn(ctx, identity, todoID, contents)
}

func (s *stubCommentService) ListComments(ctx context.Context, todoID int64) ([]ports.CommentView, error) {
	return s.listFn(ctx, todoID)
}

type stubUserService struct {
	getFn            func(ctx context.Context, id int64) (*ports.UserView, error)
	changePasswordFn func(ctx context.Context, id int64, oldPassword, newPassword string) error
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*ports.UserView, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, id, oldPassword, newPassword)
}

type stubAdminService struct {
	changeRoleFn    func(ctx context.Context, userID int64, roleName string) error
	deleteCommentFn func(ctx context.Context, commentID int64) error
}

func (s *stubAdminService) ChangeUserRole(ctx context.Context, userID int64, roleName string) error {
	return s.changeRoleFn(ctx, userID, roleName)
}

func (s *stubAdminService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.deleteCommentFn(ctx, commentID)
}
