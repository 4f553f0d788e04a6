package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminUser is the public view of the admin account
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the signed token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	User      AdminUser `json:"user"`
}

// CreateAdminResponse is returned after the admin account is created
type CreateAdminResponse struct {
	Message string    `json:"message"`
	User    AdminUser `json:"user"`
}
