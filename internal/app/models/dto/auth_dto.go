package dto

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@cetadvisor.in"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// AdminUserData is the user portion of a successful login response
type AdminUserData struct {
	ID    string `json:"id" example:"3f6b0a1c-9d2e-4f5a-8b7c-6d5e4f3a2b1c"`
	Email string `json:"email" example:"admin@cetadvisor.in"`
	Role  string `json:"role" example:"admin"`
}

// LoginResponse carries the signed token and the authenticated user
type LoginResponse struct {
	Token string        `json:"token"`
	User  AdminUserData `json:"user"`
}
