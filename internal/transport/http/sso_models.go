package http

// RegisterRequest carries the candidate user record.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
	Phone    string `json:"phone" example:"13800000000"`
	Email    string `json:"email" example:"alice@example.com"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret"`
}
