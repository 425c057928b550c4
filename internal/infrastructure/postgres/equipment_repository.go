package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementação da porta EquipmentRepository sobre PostgreSQL.
type EquipmentRepo struct {
	db DB
}

// NewEquipmentRepository constrói o adaptador de persistência para equipamentos.
func NewEquipmentRepository(db DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

// Create persiste um novo equipamento. Viola a unicidade de serial_number ->
// domain.ErrSerialNumberTaken.
func (r *EquipmentRepo) Create(ctx context.Context, eq *entity.Equipment) error {
	query := `
		INSERT INTO equipments (client_id, type, brand, model, serial_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		eq.ClientID, eq.Type, eq.Brand, eq.Model, eq.SerialNumber,
	).Scan(&eq.ID, &eq.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSerialNumberTaken
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtém um equipamento por ID. (nil, nil) quando não existe.
func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Equipment, error) {
	query := `SELECT id, client_id, type, brand, model, serial_number, created_at FROM equipments WHERE id = $1`
	var e entity.Equipment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ClientID, &e.Type, &e.Brand, &e.Model, &e.SerialNumber, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment by id: %w", err)
	}
	return &e, nil
}

// List devolve equipamentos, opcionalmente filtrados pelo cliente dono.
func (r *EquipmentRepo) List(ctx context.Context, clientID *int64) ([]*entity.Equipment, error) {
	query := `SELECT id, client_id, type, brand, model, serial_number, created_at FROM equipments`
	args := []any{}
	if clientID != nil {
		query += ` WHERE client_id = $1`
		args = append(args, *clientID)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	defer rows.Close()
	var out []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Type, &e.Brand, &e.Model, &e.SerialNumber, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
