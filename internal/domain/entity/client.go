package entity

import "time"

// Client representa um cliente da assistência técnica (dono dos equipamentos).
type Client struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}
