package repository

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// UserRepository define a porta de persistência para User (DIP).
// Os métodos Get* retornam (nil, nil) quando a linha não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetActiveByID só encontra usuários com is_active = true.
	GetActiveByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListActive(ctx context.Context) ([]*entity.User, error)
	// Deactivate faz o soft delete (is_active = false). Retorna false se
	// nenhuma linha foi afetada.
	Deactivate(ctx context.Context, id int64) (bool, error)
}
