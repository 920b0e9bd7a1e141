package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Add leaves a comment on a todo. The caller must be one of its managers.
//
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int                true  "Todo id"
// @Param        body    body      addCommentRequest  true  "Comment"
// @Success      200     {object}  ports.CommentView
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}
	var req addCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.AddComment(c.Request().Context(), identity, todoID, req.Contents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// List returns the comments of a todo.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {array}   ports.CommentView
// @Failure      400     {object}  errorResponse
// @Router       /todos/{todoId}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListComments(c.Request().Context(), todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}
