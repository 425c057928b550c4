package usecase

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// ChecklistUseCase casos de uso de modelos de checklist.
type ChecklistUseCase struct {
	tx   TxRunner
	repo repository.ChecklistRepository
}

// NewChecklistUseCase constrói o caso de uso.
func NewChecklistUseCase(tx TxRunner, repo repository.ChecklistRepository) *ChecklistUseCase {
	return &ChecklistUseCase{tx: tx, repo: repo}
}

// Create cria um modelo de checklist com itens. A posição de cada item é
// a ordem de chegada no array. Checklist e itens gravam na mesma transação.
func (uc *ChecklistUseCase) Create(ctx context.Context, in dto.CreateChecklistRequest) (*dto.ChecklistResponse, error) {
	if in.Name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cl := &entity.Checklist{
		Name:        in.Name,
		Description: in.Description,
	}
	for i, it := range in.Items {
		if it.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		cl.Items = append(cl.Items, entity.ChecklistItem{
			Description: it.Description,
			Position:    i + 1,
		})
	}
	err := uc.tx.RunChecklist(ctx, func(checklists repository.ChecklistRepository) error {
		return checklists.Create(ctx, cl)
	})
	if err != nil {
		return nil, err
	}
	return toChecklistResponse(cl), nil
}

// GetByID obtém um checklist com seus itens.
func (uc *ChecklistUseCase) GetByID(ctx context.Context, id int64) (*dto.ChecklistResponse, error) {
	cl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, domain.ErrChecklistNotFound
	}
	return toChecklistResponse(cl), nil
}

// List devolve todos os checklists.
func (uc *ChecklistUseCase) List(ctx context.Context) ([]dto.ChecklistResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChecklistResponse, 0, len(list))
	for _, cl := range list {
		out = append(out, *toChecklistResponse(cl))
	}
	return out, nil
}
