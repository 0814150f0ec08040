package dto

// RegisterUserRequest is the self-registration payload
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUserResponse confirms account creation
type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginUser is the account projection returned on login (no password)
type LoginUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResponse confirms a successful login
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}
