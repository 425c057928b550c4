package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin   = "admin"
	RoleTecnico = "tecnico"
)

// User representa um usuário do sistema (administrador ou técnico de campo).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // hash bcrypt, nunca em texto plano depois de persistir
	Name         *string
	Email        *string
	Role         string // admin, tecnico
	IsActive     bool
	CreatedAt    time.Time
}

// ValidRole indica se o papel informado é conhecido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTecnico
}
