package repository

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// ChecklistRepository define a porta de persistência para Checklist.
// Create persiste o checklist e seus itens; GetByID carrega os itens
// ordenados por posição.
type ChecklistRepository interface {
	Create(ctx context.Context, cl *entity.Checklist) error
	GetByID(ctx context.Context, id int64) (*entity.Checklist, error)
	List(ctx context.Context) ([]*entity.Checklist, error)
}
