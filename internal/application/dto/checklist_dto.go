package dto

import "time"

// ChecklistItemRequest item de um checklist na criação. A posição é a
// ordem de chegada no array.
type ChecklistItemRequest struct {
	Description string `json:"description" validate:"required,max=300"`
}

// CreateChecklistRequest entrada para criar um modelo de checklist.
type CreateChecklistRequest struct {
	Name        string                 `json:"name" validate:"required,max=200"`
	Description *string                `json:"description"`
	Items       []ChecklistItemRequest `json:"items" validate:"required,min=1"`
}

// ChecklistItemResponse item de checklist na saída.
type ChecklistItemResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

// ChecklistResponse saída de um modelo de checklist com seus itens.
type ChecklistResponse struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description"`
	CreatedAt   time.Time               `json:"created_at"`
	Items       []ChecklistItemResponse `json:"items"`
}
