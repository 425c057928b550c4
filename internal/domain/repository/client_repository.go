package repository

import (
	"context"

	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// ClientRepository define a porta de persistência para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
}
