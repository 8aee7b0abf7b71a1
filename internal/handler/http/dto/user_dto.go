package dto

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// RoleResponse is the body of GET /users/:email/role.
type RoleResponse struct {
	Role string `json:"role"`
}
