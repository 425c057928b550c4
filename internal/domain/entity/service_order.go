package entity

import "time"

// Status conhecidos de uma ordem de serviço.
// Conjunto fechado: qualquer outro valor é rejeitado na escrita,
// mas não há tabela de transições — qualquer status conhecido pode
// ser gravado a partir de qualquer outro.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// ValidStatus indica se o status informado pertence ao conjunto conhecido.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusClosed
}

// ServiceOrder é a entidade central: amarra cliente, equipamento e
// técnico responsável (UserID).
type ServiceOrder struct {
	ID          int64
	Title       string
	Description *string
	Status      string
	ClientID    int64
	EquipmentID int64
	UserID      int64 // técnico atribuído
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
