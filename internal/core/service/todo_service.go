package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type TodoService struct {
	todos   ports.TodoRepository
	weather ports.WeatherProvider
	log     zerolog.Logger
}

func NewTodoService(todos ports.TodoRepository, weather ports.WeatherProvider, log zerolog.Logger) *TodoService {
	return &TodoService{todos: todos, weather: weather, log: log}
}

// CreateTodo stores a todo owned by identity, stamped with today's weather.
func (s *TodoService) CreateTodo(ctx context.Context, identity domain.Identity, title, contents string) (*ports.TodoView, error) {
	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	now := time.Now().UTC()
	todo, err := s.todos.Create(ctx, &domain.Todo{
		Title:      title,
		Contents:   contents,
		Weather:    weather,
		OwnerID:    identity.UserID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", identity.UserID).Msg("failed to create todo")
		return nil, err
	}
	todo.Owner = &domain.User{ID: identity.UserID, Email: identity.Email, Role: identity.Role}

	metrics.TodosCreatedTotal.Inc()
	s.log.Info().Int64("todo_id", todo.ID).Int64("user_id", identity.UserID).Msg("todo created")

	view := ports.NewTodoView(todo)
	return &view, nil
}

func (s *TodoService) GetTodo(ctx context.Context, id int64) (*ports.TodoView, error) {
	todo, err := s.todos.FindByIDWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	view := ports.NewTodoView(todo)
	return &view, nil
}

// ListTodos returns a 1-based page of todos, most recently modified first.
func (s *TodoService) ListTodos(ctx context.Context, page, size int) (*ports.TodoPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	todos, total, err := s.todos.List(ctx, ports.TodoPageQuery{Page: page, Size: size})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	items := make([]ports.TodoView, 0, len(todos))
	for _, t := range todos {
		items = append(items, ports.NewTodoView(t))
	}

	return &ports.TodoPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}, nil
}
