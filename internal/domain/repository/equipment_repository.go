package repository

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// EquipmentRepository define a porta de persistência para Equipment.
type EquipmentRepository interface {
	Create(ctx context.Context, eq *entity.Equipment) error
	GetByID(ctx context.Context, id int64) (*entity.Equipment, error)
	// List retorna todos os equipamentos; com clientID != nil filtra pelo dono.
	List(ctx context.Context, clientID *int64) ([]*entity.Equipment, error)
}
