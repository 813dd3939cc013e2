package auth

// RegisterRequest carries the fields of a registration submission.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the fields of a login submission.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
