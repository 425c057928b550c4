package entity

import "time"

// Equipment representa um equipamento de um cliente.
// SerialNumber é único em todo o sistema.
type Equipment struct {
	ID           int64
	ClientID     int64
	Type         string
	Brand        string
	Model        string
	SerialNumber string
	CreatedAt    time.Time
}
