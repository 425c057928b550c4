package dto

import "time"

// CreateOrderRequest entrada para criar uma ordem de serviço.
// O técnico responsável inicial é o usuário autenticado.
type CreateOrderRequest struct {
	ClientID    int64   `json:"client_id" validate:"required"`
	EquipmentID int64   `json:"equipment_id" validate:"required"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=open in_progress closed"`
}

// UpdateOrderRequest atualização parcial: só os campos presentes mudam.
type UpdateOrderRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// AssignTechnicianRequest corpo opcional de PUT /orders/{id}/assign-technician
// (também aceito via query string technician_id).
type AssignTechnicianRequest struct {
	TechnicianID int64 `json:"technician_id"`
}

// OrderResponse saída denormalizada de uma ordem de serviço: embute
// cliente, equipamento e técnico. Sub-objetos nulos quando a linha
// referenciada não existe mais.
type OrderResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Status      string             `json:"status"`
	ClientID    int64              `json:"client_id"`
	EquipmentID int64              `json:"equipment_id"`
	UserID      int64              `json:"user_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Client      *ClientResponse    `json:"client"`
	Equipment   *EquipmentResponse `json:"equipment"`
	User        *UserResponse      `json:"user"`
}

// AssignedOrder resumo da ordem após atribuição de técnico.
type AssignedOrder struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Status     string        `json:"status"`
	Technician *UserResponse `json:"technician"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// AssignTechnicianResponse saída de PUT /orders/{id}/assign-technician.
type AssignTechnicianResponse struct {
	Message string        `json:"message"`
	Order   AssignedOrder `json:"order"`
}
