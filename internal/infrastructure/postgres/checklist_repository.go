package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

var _ repository.ChecklistRepository = (*ChecklistRepo)(nil)

// ChecklistRepo implementação da porta ChecklistRepository sobre PostgreSQL.
type ChecklistRepo struct {
	db DB
}

// NewChecklistRepository constrói o adaptador de persistência para checklists.
func NewChecklistRepository(db DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

// Create persiste o checklist e seus itens. Deve rodar dentro de uma
// transação (via TxRunner) para não deixar checklist sem itens em caso
// de falha parcial.
func (r *ChecklistRepo) Create(ctx context.Context, cl *entity.Checklist) error {
	query := `
		INSERT INTO checklists (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`
	if err := r.db.QueryRow(ctx, query, cl.Name, cl.Description).Scan(&cl.ID, &cl.CreatedAt); err != nil {
		return fmt.Errorf("insert checklist: %w", err)
	}
	for i := range cl.Items {
		item := &cl.Items[i]
		item.ChecklistID = cl.ID
		err := r.db.QueryRow(ctx,
			`INSERT INTO checklist_items (checklist_id, description, position) VALUES ($1, $2, $3) RETURNING id`,
			item.ChecklistID, item.Description, item.Position,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert checklist item: %w", err)
		}
	}
	return nil
}

// GetByID obtém um checklist com itens ordenados por posição. (nil, nil)
// quando não existe.
func (r *ChecklistRepo) GetByID(ctx context.Context, id int64) (*entity.Checklist, error) {
	var cl entity.Checklist
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM checklists WHERE id = $1`, id,
	).Scan(&cl.ID, &cl.Name, &cl.Description, &cl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist by id: %w", err)
	}
	items, err := r.loadItems(ctx, cl.ID)
	if err != nil {
		return nil, err
	}
	cl.Items = items
	return &cl, nil
}

// List devolve todos os checklists com seus itens.
func (r *ChecklistRepo) List(ctx context.Context) ([]*entity.Checklist, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, created_at FROM checklists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	defer rows.Close()
	var out []*entity.Checklist
	for rows.Next() {
		var cl entity.Checklist
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Description, &cl.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		out = append(out, &cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, cl := range out {
		items, err := r.loadItems(ctx, cl.ID)
		if err != nil {
			return nil, err
		}
		cl.Items = items
	}
	return out, nil
}

func (r *ChecklistRepo) loadItems(ctx context.Context, checklistID int64) ([]entity.ChecklistItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, checklist_id, description, position FROM checklist_items WHERE checklist_id = $1 ORDER BY position`,
		checklistID,
	)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	defer rows.Close()
	var items []entity.ChecklistItem
	for rows.Next() {
		var it entity.ChecklistItem
		if err := rows.Scan(&it.ID, &it.ChecklistID, &it.Description, &it.Position); err != nil {
			return nil, fmt.Errorf("scan checklist item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
