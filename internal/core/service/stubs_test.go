package service

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories
// ---------------------------------------------------------------------------

type memStore struct {
	nextID   int64
	users    map[int64]*domain.User
	todos    map[int64]*domain.Todo
	managers map[int64]*domain.Manager
	comments map[int64]*domain.Comment

	passwordUpdates int
	failWith        error // if set, every write returns this error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		todos:    make(map[int64]*domain.Todo),
		managers: make(map[int64]*domain.Manager),
		comments: make(map[int64]*domain.Comment),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) userRepo() *stubUserRepo { return &stubUserRepo{s} }
func (s *memStore) todoRepo() *stubTodoRepo { return &stubTodoRepo{s} }
func (s *memStore) managerRepo() *stubManagerRepo { return &stubManagerRepo{s} }
func (s *memStore) commentRepo() *stubCommentRepo { return &stubCommentRepo{s} }

func (s *memStore) cloneUser(id int64) *domain.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	clone := *u
	return &clone
}

// addUser seeds a user whose password is hashed with the minimum bcrypt cost.
func (s *memStore) addUser(email, password string, role domain.Role) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &domain.User{ID: s.id(), Email: email, PasswordHash: string(hash), Role: role}
	s.users[u.ID] = u
	return s.cloneUser(u.ID)
}

func (s *memStore) addTodo(ownerID int64, title string) *domain.Todo {
	t := &domain.Todo{ID: s.id(), Title: title, Contents: "contents", Weather: "Sunny", OwnerID: ownerID}
	s.todos[t.ID] = t
	clone := *t
	return &clone
}

func (s *memStore) addManager(userID, todoID int64) *domain.Manager {
	m := &domain.Manager{ID: s.id(), UserID: userID, TodoID: todoID}
	s.managers[m.ID] = m
	clone := *m
	return &clone
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct{ s *memStore }

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	clone := *user
	clone.ID = r.s.id()
	r.s.users[clone.ID] = &clone
	return r.s.cloneUser(clone.ID), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u := r.s.cloneUser(id); u != nil {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for id, u := range r.s.users {
		if u.Email == email {
			return r.s.cloneUser(id), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	r.s.passwordUpdates++
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

// ---------------------------------------------------------------------------
// Todos
// ---------------------------------------------------------------------------

type stubTodoRepo struct{ s *memStore }

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	clone := *todo
	clone.ID = r.s.id()
	r.s.todos[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id int64) (*domain.Todo, error) {
	t, ok := r.s.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTodoRepo) FindByIDWithOwner(ctx context.Context, id int64) (*domain.Todo, error) {
	t, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Owner = r.s.cloneUser(t.OwnerID)
	return t, nil
}

func (r *stubTodoRepo) List(_ context.Context, q ports.TodoPageQuery) ([]*domain.Todo, int64, error) {
	all := make([]*domain.Todo, 0, len(r.s.todos))
	for _, t := range r.s.todos {
		clone := *t
		clone.Owner = r.s.cloneUser(t.OwnerID)
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ModifiedAt.Equal(all[j].ModifiedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].ModifiedAt.After(all[j].ModifiedAt)
	})

	total := int64(len(all))
	skip := (q.Page - 1) * q.Size
	if skip >= len(all) {
		return []*domain.Todo{}, total, nil
	}
	end := skip + q.Size
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

// ---------------------------------------------------------------------------
// Managers
// ---------------------------------------------------------------------------

type stubManagerRepo struct{ s *memStore }

func (r *stubManagerRepo) Create(_ context.Context, m *domain.Manager) (*domain.Manager, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	clone := *m
	clone.ID = r.s.id()
	r.s.managers[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubManagerRepo) FindByID(_ context.Context, id int64) (*domain.Manager, error) {
	m, ok := r.s.managers[id]
	if !ok {
		return nil, domain.ErrManagerNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubManagerRepo) FindByTodoIDWithUser(_ context.Context, todoID int64) ([]*domain.Manager, error) {
	var out []*domain.Manager
	for _, m := range r.s.managers {
		if m.TodoID != todoID {
			continue
		}
		clone := *m
		clone.User = r.s.cloneUser(m.UserID)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubManagerRepo) ExistsByTodoIDAndUserID(_ context.Context, todoID, userID int64) (bool, error) {
	for _, m := range r.s.managers {
		if m.TodoID == todoID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubManagerRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.managers, id)
	return nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

type stubCommentRepo struct{ s *memStore }

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	clone := *c
	clone.ID = r.s.id()
	r.s.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByTodoIDWithUser(_ context.Context, todoID int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.s.comments {
		if c.TodoID != todoID {
			continue
		}
		clone := *c
		clone.User = r.s.cloneUser(c.UserID)
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCommentRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.s.comments, id)
	return nil
}

// ---------------------------------------------------------------------------
// Collaborators
// ---------------------------------------------------------------------------

type stubWeather struct {
	weather string
	err     error
	calls   int
}

func (w *stubWeather) TodayWeather(context.Context) (string, error) {
	w.calls++
	return w.weather, w.err
}

var discardLogger = zerolog.Nop()

func identityOf(u *domain.User) domain.Identity {
	return domain.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}
