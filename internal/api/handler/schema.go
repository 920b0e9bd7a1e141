package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserRole string `json:"userRole" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	BearerToken string `json:"bearerToken"`
}

type createTodoRequest struct {
	Title    string `json:"title"    validate:"required"`
	Contents string `json:"contents" validate:"required"`
}

type assignManagerRequest struct {
	ManagerUserID int64 `json:"managerUserId" validate:"required,gt=0"`
}

type addCommentRequest struct {
	Contents string `json:"contents" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
