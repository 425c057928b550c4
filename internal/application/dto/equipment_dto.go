package dto

import "time"

// CreateEquipmentRequest entrada para criar um equipamento.
type CreateEquipmentRequest struct {
	ClientID     int64  `json:"client_id" validate:"required"`
	Type         string `json:"type" validate:"required,max=100"`
	Brand        string `json:"brand" validate:"omitempty,max=100"`
	Model        string `json:"model" validate:"omitempty,max=100"`
	SerialNumber string `json:"serial_number" validate:"required,max=100"`
}

// EquipmentResponse saída de um equipamento.
type EquipmentResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
	ClientID     int64     `json:"client_id"`
	CreatedAt    time.Time `json:"created_at"`
}
