package usecase

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// OrderPDFUseCase gera a folha impressa de uma ordem de serviço.
type OrderPDFUseCase struct {
	orders     repository.OrderRepository
	users      repository.UserRepository
	clients    repository.ClientRepository
	equipments repository.EquipmentRepository
	generator  OrderPDFGenerator
}

// NewOrderPDFUseCase constrói o caso de uso.
func NewOrderPDFUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	clients repository.ClientRepository,
	equipments repository.EquipmentRepository,
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{orders: orders, users: users, clients: clients, equipments: equipments, generator: generator}
}

// Generate monta o PDF da ordem. Linhas relacionadas ausentes entram como
// seções vazias na folha, não como erro.
func (uc *OrderPDFUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	client, err := uc.clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipments.GetByID(ctx, order.EquipmentID)
	if err != nil {
		return nil, err
	}
	technician, err := uc.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrderPDF(ctx, order, client, equipment, technician)
}
