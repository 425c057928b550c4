package repository

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// OrderFilter filtros opcionais para listagem de ordens de serviço.
type OrderFilter struct {
	Status *string
	UserID *int64
	Skip   int
	Limit  int
}

// OrderRepository define a porta de persistência para ServiceOrder.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.ServiceOrder) error
	GetByID(ctx context.Context, id int64) (*entity.ServiceOrder, error)
	List(ctx context.Context, f OrderFilter) ([]*entity.ServiceOrder, error)
	Update(ctx context.Context, order *entity.ServiceOrder) error
	// Delete remove fisicamente a ordem. Retorna false se nenhuma linha
	// foi afetada.
	Delete(ctx context.Context, id int64) (bool, error)
}
