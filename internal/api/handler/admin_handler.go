package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/ports"
)

// AdminHandler serves the routes mounted under /admin. RBAC is applied by the router.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ChangeUserRole sets the role of a user.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        userId  path  int                true  "User id"
// @Param        body    body  changeRoleRequest  true  "New role"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{userId} [patch]
func (h *AdminHandler) ChangeUserRole(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ChangeUserRole(c.Request().Context(), userID, req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteComment removes a comment. Deleting an unknown comment succeeds.
//
// @Summary      Delete a comment
// @Tags         admin
// @Security     BearerAuth
// @Param        commentId  path  int  true  "Comment id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/comments/{commentId} [delete]
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteComment(c.Request().Context(), commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
