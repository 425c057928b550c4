package usecase

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// EquipmentUseCase casos de uso de equipamentos.
type EquipmentUseCase struct {
	repo       repository.EquipmentRepository
	clientRepo repository.ClientRepository
}

// NewEquipmentUseCase constrói o caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, clientRepo repository.ClientRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, clientRepo: clientRepo}
}

// Create cria um equipamento. O cliente dono precisa existir
// (ErrClientNotFound) e o serial_number é único no sistema
// (ErrSerialNumberTaken).
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	eq := &entity.Equipment{
		ClientID:     in.ClientID,
		Type:         in.Type,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
	}
	if err := uc.repo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// List devolve equipamentos, opcionalmente filtrados pelo cliente dono.
func (uc *EquipmentUseCase) List(ctx context.Context, clientID *int64) ([]dto.EquipmentResponse, error) {
	list, err := uc.repo.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEquipmentResponse(e))
	}
	return out, nil
}
