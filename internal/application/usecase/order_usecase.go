package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jpfarias/assistec-api/internal/application/dto"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// Limites de paginação para listagem de ordens.
const (
	orderListMaxLimit     = 100
	orderListDefaultLimit = 100
)

// OrderUseCase casos de uso de ordens de serviço: CRUD, atribuição de
// técnico e montagem da resposta denormalizada.
//
// Mutações multi-passo (criação, atribuição) rodam dentro do TxRunner:
// a verificação das chaves estrangeiras e a escrita compartilham a mesma
// transação.
type OrderUseCase struct {
	tx         TxRunner
	orders     repository.OrderRepository
	users      repository.UserRepository
	clients    repository.ClientRepository
	equipments repository.EquipmentRepository
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(
	tx TxRunner,
	orders repository.OrderRepository,
	users repository.UserRepository,
	clients repository.ClientRepository,
	equipments repository.EquipmentRepository,
) *OrderUseCase {
	return &OrderUseCase{tx: tx, orders: orders, users: users, clients: clients, equipments: equipments}
}

// Create cria uma ordem de serviço. Cliente e equipamento precisam existir;
// o técnico responsável inicial é o usuário autenticado (creatorID).
func (uc *OrderUseCase) Create(ctx context.Context, creatorID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusOpen
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		users repository.UserRepository,
		clients repository.ClientRepository,
		equipments repository.EquipmentRepository,
	) error {
		client, err := clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrClientNotFound
		}
		equipment, err := equipments.GetByID(ctx, in.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrEquipmentNotFound
		}
		order := &entity.ServiceOrder{
			Title:       in.Title,
			Description: in.Description,
			Status:      status,
			ClientID:    in.ClientID,
			EquipmentID: in.EquipmentID,
			UserID:      creatorID,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		creator, err := users.GetByID(ctx, creatorID)
		if err != nil {
			return err
		}
		out = assembleOrderResponse(order, client, equipment, creator)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtém uma ordem com cliente, equipamento e técnico embutidos.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return uc.enrich(ctx, order)
}

// List lista ordens com filtros opcionais de status e técnico.
// Limit é grampeado em [1,100] (default 100) e skip negativo vira zero.
func (uc *OrderUseCase) List(ctx context.Context, status *string, userID *int64, skip, limit int) ([]dto.OrderResponse, error) {
	if limit <= 0 {
		limit = orderListDefaultLimit
	}
	if limit > orderListMaxLimit {
		limit = orderListMaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	list, err := uc.orders.List(ctx, repository.OrderFilter{
		Status: status,
		UserID: userID,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		resp, err := uc.enrich(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Update aplica atualização parcial: só os campos presentes mudam.
// updated_at é sempre renovado, mesmo sem nenhum campo no corpo.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if in.Title != nil {
		order.Title = *in.Title
	}
	if in.Description != nil {
		order.Description = in.Description
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *in.Status)
		}
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return uc.enrich(ctx, order)
}

// AssignTechnician atribui ou reatribui um técnico ativo à ordem.
// Técnico inexistente ou desativado -> ErrTechnicianNotFound, sem tocar
// na ordem.
func (uc *OrderUseCase) AssignTechnician(ctx context.Context, orderID, technicianID int64) (*dto.AssignTechnicianResponse, error) {
	var out *dto.AssignTechnicianResponse
	err := uc.tx.Run(ctx, func(
		orders repository.OrderRepository,
		users repository.UserRepository,
		_ repository.ClientRepository,
		_ repository.EquipmentRepository,
	) error {
		order, err := orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		technician, err := users.GetActiveByID(ctx, technicianID)
		if err != nil {
			return err
		}
		if technician == nil {
			return domain.ErrTechnicianNotFound
		}
		order.UserID = technician.ID
		order.UpdatedAt = time.Now()
		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		display := technician.Username
		if technician.Name != nil && *technician.Name != "" {
			display = *technician.Name
		}
		out = &dto.AssignTechnicianResponse{
			Message: fmt.Sprintf("Técnico %s atribuído com sucesso", display),
			Order: dto.AssignedOrder{
				ID:         order.ID,
				Title:      order.Title,
				Status:     order.Status,
				Technician: toUserResponse(technician),
				UpdatedAt:  order.UpdatedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete remove fisicamente a ordem.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOrderNotFound
	}
	return nil
}

// enrich busca as linhas relacionadas e monta a resposta denormalizada.
// Linha referenciada ausente vira sub-objeto nulo, não erro.
func (uc *OrderUseCase) enrich(ctx context.Context, order *entity.ServiceOrder) (*dto.OrderResponse, error) {
	client, err := uc.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipments.GetByID(ctx, order.EquipmentID)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	return assembleOrderResponse(order, client, equipment, user), nil
}

func assembleOrderResponse(o *entity.ServiceOrder, c *entity.Client, e *entity.Equipment, u *entity.User) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		ClientID:    o.ClientID,
		EquipmentID: o.EquipmentID,
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Client:      toClientResponse(c),
		Equipment:   toEquipmentResponse(e),
		User:        toUserResponse(u),
	}
}
