package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrClientNotFound       = errors.New("cliente não encontrado")
	ErrEquipmentNotFound    = errors.New("equipamento não encontrado")
	ErrOrderNotFound        = errors.New("ordem de serviço não encontrada")
	ErrTechnicianNotFound   = errors.New("técnico não encontrado ou inativo")
	ErrChecklistNotFound    = errors.New("checklist não encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidStatus        = errors.New("status inválido")
	ErrUsernameOrEmailTaken = errors.New("username ou email já existem")
	ErrSerialNumberTaken    = errors.New("número de série já existe")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
)
