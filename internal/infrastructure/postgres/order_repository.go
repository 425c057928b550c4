package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, title, description, status, client_id, equipment_id, user_id, created_at, updated_at`

// OrderRepo implementação da porta OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db DB
}

// NewOrderRepository constrói o adaptador de persistência para ordens de serviço.
func NewOrderRepository(db DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste uma nova ordem e preenche ID, CreatedAt e UpdatedAt.
func (r *OrderRepo) Create(ctx context.Context, order *entity.ServiceOrder) error {
	query := `
		INSERT INTO service_orders (title, description, status, client_id, equipment_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		order.Title, order.Description, order.Status, order.ClientID, order.EquipmentID, order.UserID,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert service order: %w", err)
	}
	return nil
}

// GetByID obtém uma ordem por ID. (nil, nil) quando não existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM service_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.Title, &o.Description, &o.Status, &o.ClientID, &o.EquipmentID, &o.UserID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service order by id: %w", err)
	}
	return &o, nil
}

// List devolve ordens aplicando filtros opcionais de status e técnico,
// com paginação skip/limit.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.ServiceOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM service_orders`
	var (
		args  []any
		where []string
	)
	if f.Status != nil {
		args = append(args, *f.Status)
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if f.UserID != nil {
		args = append(args, *f.UserID)
		where = append(where, "user_id = $"+strconv.Itoa(len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	args = append(args, f.Limit)
	query += " ORDER BY id LIMIT $" + strconv.Itoa(len(args))
	args = append(args, f.Skip)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.ServiceOrder
	for rows.Next() {
		var o entity.ServiceOrder
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.Status, &o.ClientID, &o.EquipmentID, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Update grava título, descrição, status, técnico e updated_at.
func (r *OrderRepo) Update(ctx context.Context, order *entity.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET title = $2, description = $3, status = $4, user_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.Title, order.Description, order.Status, order.UserID, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service order: %w", err)
	}
	return nil
}

// Delete remove fisicamente a ordem. Retorna false quando o ID não existe.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete service order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
