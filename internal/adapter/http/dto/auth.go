package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserItem never carries the password hash.
type UserItem struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type AuthResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token"`
	User    UserItem `json:"user"`
}

type ProfileResponse struct {
	Status bool     `json:"status"`
	User   UserItem `json:"user"`
}
