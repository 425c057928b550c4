package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída do login com token JWT.
// ExpiresIn em segundos, TokenType sempre "bearer".
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// VerifyTokenResponse saída de POST /auth/verify-token.
type VerifyTokenResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}
