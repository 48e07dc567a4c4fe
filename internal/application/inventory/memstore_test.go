package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

// fakeStore guarda productos, saldos y movimientos en memoria y emula la
// semántica transaccional del TxRunner de Postgres: lock por producto,
// cambios en staging y commit/rollback completos.
type fakeStore struct {
	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	products  map[string]*entity.Product
	stock     map[string]int64
	movements []*entity.Movement

	// failMovementCreate fuerza un fallo al insertar en el historial,
	// para verificar que el rollback no deja efectos parciales.
	failMovementCreate bool
	// busyOnLock simula lock_timeout vencido al pedir el lock de fila.
	busyOnLock bool
	// failCommit simula un fallo al confirmar la transacción.
	failCommit bool
	// readForUpdate cuenta las lecturas bajo lock; permite verificar que la
	// validación rechaza sin tocar el ledger.
	readForUpdate int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locks:    make(map[string]*sync.Mutex),
		products: make(map[string]*entity.Product),
		stock:    make(map[string]int64),
	}
}

func (s *fakeStore) addProduct(id, name string, minimum, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = &entity.Product{ID: id, SKU: "SKU-" + id, Name: name, MinimumStock: minimum}
	s.stock[id] = balance
}

func (s *fakeStore) balance(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[id]
}

func (s *fakeStore) movementCount(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n
}

func (s *fakeStore) lockFor(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[productID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[productID] = m
	}
	return m
}

// fakeTx una transacción en curso: locks retenidos y cambios aún no aplicados.
type fakeTx struct {
	store    *fakeStore
	held     []*sync.Mutex
	stock    map[string]int64
	appended []*entity.Movement
}

func (tx *fakeTx) release() {
	for _, m := range tx.held {
		m.Unlock()
	}
	tx.held = nil
}

// Run implementa inventory.TxRunner: ejecuta fn con repos atados a la tx y
// aplica los cambios solo si fn no falla.
func (s *fakeStore) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx := &fakeTx{store: s, stock: make(map[string]int64)}
	defer tx.release()

	if err := fn(&txMovementRepo{tx}, &txStockRepo{tx}, &txProductRepo{tx}); err != nil {
		return err
	}

	if s.failCommit {
		return fmt.Errorf("%w: commit transaction: conexión perdida", domain.ErrPersistence)
	}

	s.mu.Lock()
	for id, b := range tx.stock {
		s.stock[id] = b
	}
	s.movements = append(s.movements, tx.appended...)
	s.mu.Unlock()
	return nil
}

// txStockRepo repositorio de saldo atado a la tx.
type txStockRepo struct{ tx *fakeTx }

func (r *txStockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	if r.tx.store.busyOnLock {
		return nil, domain.ErrBusy
	}
	lock := r.tx.store.lockFor(productID)
	lock.Lock()
	r.tx.held = append(r.tx.held, lock)

	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	r.tx.store.readForUpdate++
	p, ok := r.tx.store.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	balance, staged := r.tx.stock[productID]
	if !staged {
		balance = r.tx.store.stock[productID]
	}
	return &entity.Stock{
		ProductID:    productID,
		Balance:      balance,
		MinimumStock: p.MinimumStock,
		UpdatedAt:    time.Now(),
	}, nil
}

func (r *txStockRepo) Get(productID string) (*entity.Stock, error) {
	return r.GetForUpdate(productID)
}

func (r *txStockRepo) Upsert(stock *entity.Stock) error {
	if stock.Balance < 0 {
		return domain.ErrInsufficientStock
	}
	r.tx.stock[stock.ProductID] = stock.Balance
	return nil
}

func (r *txStockRepo) Delete(productID string) error {
	r.tx.stock[productID] = 0
	return nil
}

func (r *txStockRepo) ListLevels() ([]*entity.StockLevel, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	var list []*entity.StockLevel
	for id, p := range r.tx.store.products {
		list = append(list, &entity.StockLevel{
			ProductID:    id,
			SKU:          p.SKU,
			Name:         p.Name,
			MinimumStock: p.MinimumStock,
			Balance:      r.tx.store.stock[id],
			LowStock:     r.tx.store.stock[id] < p.MinimumStock,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// txMovementRepo historial atado a la tx.
type txMovementRepo struct{ tx *fakeTx }

func (r *txMovementRepo) Create(movement *entity.Movement) error {
	if r.tx.store.failMovementCreate {
		return errors.New("insert movement: conexión perdida")
	}
	cp := *movement
	r.tx.appended = append(r.tx.appended, &cp)
	return nil
}

func (r *txMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	var list []*entity.Movement
	for _, m := range r.tx.store.movements {
		if m.ProductID == productID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *txMovementRepo) DeleteByProduct(productID string) error {
	return nil
}

// txProductRepo catálogo atado a la tx (solo lectura en estos tests).
type txProductRepo struct{ tx *fakeTx }

func (r *txProductRepo) Create(product *entity.Product) error { return nil }

func (r *txProductRepo) GetByID(id string) (*entity.Product, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	return r.tx.store.products[id], nil
}

func (r *txProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *txProductRepo) Update(product *entity.Product) error         { return nil }
func (r *txProductRepo) Search(term string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *txProductRepo) Delete(id string) error { return nil }
