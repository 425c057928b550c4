package dto

import "time"

// CreateUserRequest entrada para criar um usuário (password em texto,
// o hash é feito no use case).
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin tecnico"`
}

// UserResponse saída de um usuário (sem password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
