package usecase_test

import (
	"context"
	"time"

	"github.com/jpfarias/assistec-api/internal/domain"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
	"github.com/jpfarias/assistec-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios. Reproduzem o contrato das
// implementações Postgres: Get* devolve (nil, nil) quando não há linha,
// unicidade vira o sentinel correspondente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, ex := range r.users {
		if ex.Username == u.Username {
			return domain.ErrUsernameOrEmailTaken
		}
		if u.Email != nil && ex.Email != nil && *ex.Email == *u.Email {
			return domain.ErrUsernameOrEmailTaken
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetActiveByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsActive {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for id := int64(1); id <= r.seq; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	all, _ := r.List(context.Background())
	out := make([]*entity.User, 0, len(all))
	for _, u := range all {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id int64) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	u.IsActive = false
	return true, nil
}

type fakeClientRepo struct {
	seq     int64
	clients map[int64]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*entity.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.seq++
	c.ID = r.seq
	c.CreatedAt = time.Now()
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for id := int64(1); id <= r.seq; id++ {
		if c, ok := r.clients[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEquipmentRepo struct {
	seq        int64
	equipments map[int64]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: map[int64]*entity.Equipment{}}
}

func (r *fakeEquipmentRepo) Create(_ context.Context, eq *entity.Equipment) error {
	for _, ex := range r.equipments {
		if ex.SerialNumber == eq.SerialNumber {
			return domain.ErrSerialNumberTaken
		}
	}
	r.seq++
	eq.ID = r.seq
	eq.CreatedAt = time.Now()
	cp := *eq
	r.equipments[eq.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(_ context.Context, id int64) (*entity.Equipment, error) {
	eq, ok := r.equipments[id]
	if !ok {
		return nil, nil
	}
	cp := *eq
	return &cp, nil
}

func (r *fakeEquipmentRepo) List(_ context.Context, clientID *int64) ([]*entity.Equipment, error) {
	out := make([]*entity.Equipment, 0, len(r.equipments))
	for id := int64(1); id <= r.seq; id++ {
		eq, ok := r.equipments[id]
		if !ok {
			continue
		}
		if clientID != nil && eq.ClientID != *clientID {
			continue
		}
		cp := *eq
		out = append(out, &cp)
	}
	return out, nil
}

type fakeOrderRepo struct {
	seq    int64
	orders map[int64]*entity.ServiceOrder

	// lastFilter guarda o filtro recebido em List para inspeção.
	lastFilter repository.OrderFilter
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.ServiceOrder{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.ServiceOrder) error {
	r.seq++
	o.ID = r.seq
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.ServiceOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.ServiceOrder, error) {
	r.lastFilter = f
	out := make([]*entity.ServiceOrder, 0, len(r.orders))
	for id := int64(1); id <= r.seq; id++ {
		o, ok := r.orders[id]
		if !ok {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		if f.UserID != nil && o.UserID != *f.UserID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.ServiceOrder) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

type fakeChecklistRepo struct {
	seq        int64
	checklists map[int64]*entity.Checklist
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{checklists: map[int64]*entity.Checklist{}}
}

func (r *fakeChecklistRepo) Create(_ context.Context, cl *entity.Checklist) error {
	r.seq++
	cl.ID = r.seq
	cl.CreatedAt = time.Now()
	for i := range cl.Items {
		cl.Items[i].ID = int64(i + 1)
		cl.Items[i].ChecklistID = cl.ID
	}
	cp := *cl
	r.checklists[cl.ID] = &cp
	return nil
}

func (r *fakeChecklistRepo) GetByID(_ context.Context, id int64) (*entity.Checklist, error) {
	cl, ok := r.checklists[id]
	if !ok {
		return nil, nil
	}
	cp := *cl
	return &cp, nil
}

func (r *fakeChecklistRepo) List(_ context.Context) ([]*entity.Checklist, error) {
	out := make([]*entity.Checklist, 0, len(r.checklists))
	for id := int64(1); id <= r.seq; id++ {
		if cl, ok := r.checklists[id]; ok {
			cp := *cl
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTx entrega os mesmos repositórios em memória ao callback. Como os
// casos de uso verificam as chaves estrangeiras antes de escrever, o
// comportamento observável coincide com a transação real.
type fakeTx struct {
	orders     *fakeOrderRepo
	users      *fakeUserRepo
	clients    *fakeClientRepo
	equipments *fakeEquipmentRepo
	checklists *fakeChecklistRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(
	orders repository.OrderRepository,
	users repository.UserRepository,
	clients repository.ClientRepository,
	equipments repository.EquipmentRepository,
) error) error {
	return fn(t.orders, t.users, t.clients, t.equipments)
}

func (t *fakeTx) RunChecklist(ctx context.Context, fn func(checklists repository.ChecklistRepository) error) error {
	return fn(t.checklists)
}
