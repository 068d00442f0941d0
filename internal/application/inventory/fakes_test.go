package inventory_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// memStore es un almacén en memoria compartido por los repositorios fake.
// Los repos devuelven copias (como haría un driver de BD), así el estado solo
// cambia por los métodos de escritura y el TxRunner puede revertirlo.
type memStore struct {
	products   map[int64]*entity.Product
	warehouses map[int64]*entity.Warehouse
	lots       map[int64]*entity.Lot
	movements  []*entity.Movement
	activity   []*entity.ActivityLog
	nextLotID  int64
	nextMovID  int64
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[int64]*entity.Product),
		warehouses: make(map[int64]*entity.Warehouse),
		lots:       make(map[int64]*entity.Lot),
		nextLotID:  1,
		nextMovID:  1,
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextLotID = s.nextLotID
	cp.nextMovID = s.nextMovID
	for id, p := range s.products {
		c := *p
		cp.products[id] = &c
	}
	for id, w := range s.warehouses {
		c := *w
		cp.warehouses[id] = &c
	}
	for id, l := range s.lots {
		c := *l
		cp.lots[id] = &c
	}
	cp.movements = append(cp.movements, s.movements...)
	cp.activity = append(cp.activity, s.activity...)
	return cp
}

// memTxRunner simula la transacción: ante un error de fn restaura el snapshot
// previo, igual que un ROLLBACK.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	lotRepo repository.LotRepository,
	productRepo repository.ProductRepository,
) error) error {
	before := r.store.snapshot()
	err := fn(&memMovementRepo{r.store}, &memLotRepo{r.store}, &memProductRepo{r.store})
	if err != nil {
		*r.store = *before
		return err
	}
	return nil
}

// ---------- productos ----------

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) List(int, int) ([]*entity.Product, error)        { return nil, nil }
func (r *memProductRepo) ListBySupplier(int64) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                    { return nil }
func (r *memProductRepo) Delete(int64) error                              { return nil }

func (r *memProductRepo) UpdateStock(id int64, stock decimal.Decimal) error {
	r.s.products[id].CurrentStock = stock
	return nil
}

// ---------- bodegas ----------

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.s.warehouses[w.ID] = w; return nil }

func (r *memWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	c := *w
	return &c, nil
}

func (r *memWarehouseRepo) GetByCode(string) (*entity.Warehouse, error)  { return nil, nil }
func (r *memWarehouseRepo) List(int, int) ([]*entity.Warehouse, error)   { return nil, nil }
func (r *memWarehouseRepo) Update(*entity.Warehouse) error               { return nil }
func (r *memWarehouseRepo) Delete(int64) error                           { return nil }

// ---------- lotes ----------

type memLotRepo struct{ s *memStore }

func (r *memLotRepo) Create(l *entity.Lot) error {
	l.ID = r.s.nextLotID
	r.s.nextLotID++
	c := *l
	r.s.lots[l.ID] = &c
	return nil
}

func (r *memLotRepo) GetByID(id int64) (*entity.Lot, error) {
	l, ok := r.s.lots[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *memLotRepo) LastCodeWithPrefix(prefix string) (string, error) {
	var last *entity.Lot
	for _, l := range r.s.lots {
		if strings.HasPrefix(l.Code, prefix) && (last == nil || l.ID > last.ID) {
			last = l
		}
	}
	if last == nil {
		return "", nil
	}
	return last.Code, nil
}

func (r *memLotRepo) ListAvailableByProduct(productID int64) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID && l.Available.GreaterThan(decimal.Zero) {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memLotRepo) UpdateQuantities(l *entity.Lot) error {
	stored := r.s.lots[l.ID]
	stored.Initial = l.Initial
	stored.Available = l.Available
	stored.WarehouseID = l.WarehouseID
	return nil
}

// ---------- movimientos ----------

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *memMovementRepo) GetByID(id int64) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(repository.MovementFilter) ([]*repository.MovementListItem, int, error) {
	return nil, 0, nil
}

// ---------- actividad ----------

type memActivityRepo struct{ s *memStore }

func (r *memActivityRepo) Create(e *entity.ActivityLog) error {
	c := *e
	r.s.activity = append(r.s.activity, &c)
	return nil
}

func (r *memActivityRepo) ListRecent(int, int) ([]*entity.ActivityLog, error) { return nil, nil }

// ---------- observador ----------

type captureObserver struct {
	posted   []string
	lowStock []string
}

func (o *captureObserver) MovementPosted(t string) { o.posted = append(o.posted, t) }

func (o *captureObserver) LowStock(code string, _, _ decimal.Decimal) {
	o.lowStock = append(o.lowStock, code)
}
