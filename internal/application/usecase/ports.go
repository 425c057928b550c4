package usecase

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// TxRunner executa casos de uso multi-passo dentro de uma transação.
// Os repositórios passados ao callback estão atados à transação: commit
// no sucesso, rollback em qualquer erro.
type TxRunner interface {
	// Run cobre as mutações de ordem de serviço (criação e atribuição de
	// técnico), que verificam chaves estrangeiras antes de escrever.
	Run(ctx context.Context, fn func(
		orders repository.OrderRepository,
		users repository.UserRepository,
		clients repository.ClientRepository,
		equipments repository.EquipmentRepository,
	) error) error

	// RunChecklist cobre a criação de checklist com itens.
	RunChecklist(ctx context.Context, fn func(checklists repository.ChecklistRepository) error) error
}

// OrderPDFGenerator gera a folha impressa (A4) de uma ordem de serviço.
// client, equipment e technician podem ser nil quando a linha referenciada
// não existe mais.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.ServiceOrder, client *entity.Client, equipment *entity.Equipment, technician *entity.User) ([]byte, error)
}
