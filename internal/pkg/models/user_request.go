package models

type UpsertUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role"`
}

type RoleResponse struct {
	Role *string `json:"role"`
}
