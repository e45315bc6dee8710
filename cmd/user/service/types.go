package service

type LoginRequest struct {
	Email    string
	Password string
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Disabled *bool   `json:"disabled"`
	Role     *string `json:"role"`
}

type ResetPasswordRequest struct {
	UserId      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
