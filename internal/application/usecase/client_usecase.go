package usecase

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes: criação e listagem.
// Não há unicidade além das constraints do banco.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cria um novo cliente. Só o nome é obrigatório.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List devolve todos os clientes, sem filtro.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}
