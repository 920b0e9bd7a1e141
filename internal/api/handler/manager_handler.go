package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/ports"
)

type ManagerHandler struct {
	service ports.ManagerService
}

func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

// Assign registers a user as manager of a todo. Only the todo owner may call it.
//
// @Summary      Assign a manager
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int                   true  "Todo id"
// @Param        body    body      assignManagerRequest  true  "Manager user"
// @Success      200     {object}  ports.ManagerView
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/managers [post]
func (h *ManagerHandler) Assign(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}
	var req assignManagerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	manager, err := h.service.AssignManager(c.Request().Context(), identity, todoID, req.ManagerUserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, manager)
}

// List returns every manager of a todo.
//
// @Summary      List managers
// @Tags         managers
// @Produce      json
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {array}   ports.ManagerView
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/managers [get]
func (h *ManagerHandler) List(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	managers, err := h.service.ListManagers(c.Request().Context(), todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managers)
}

// Remove deletes a manager registration from a todo.
//
// @Summary      Remove a manager
// @Tags         managers
// @Security     BearerAuth
// @Param        todoId     path  int  true  "Todo id"
// @Param        managerId  path  int  true  "Manager id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{todoId}/managers/{managerId} [delete]
func (h *ManagerHandler) Remove(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}
	managerID, err := pathID(c, "managerId")
	if err != nil {
		return err
	}

	if err := h.service.RemoveManager(c.Request().Context(), identity.UserID, todoID, managerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
