package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create stores a todo owned by the caller with today's weather attached.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      200   {object}  ports.TodoView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	var req createTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.service.CreateTodo(c.Request().Context(), identity, req.Title, req.Contents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Get returns a single todo with its owner.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {object}  ports.TodoView
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	todo, err := h.service.GetTodo(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// List returns a page of todos ordered by last modification.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        page  query     int  false  "Page number (1-based)"  default(1)
// @Param        size  query     int  false  "Page size (max 100)"    default(10)
// @Success      200   {object}  ports.TodoPage
// @Failure      400   {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return err
	}

	result, err := h.service.ListTodos(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
