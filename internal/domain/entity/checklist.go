package entity

import "time"

// Checklist é um modelo de verificação aplicável a ordens de serviço.
type Checklist struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	Items       []ChecklistItem
}

// ChecklistItem é um item ordenado de um checklist.
type ChecklistItem struct {
	ID          int64
	ChecklistID int64
	Description string
	Position    int
}
