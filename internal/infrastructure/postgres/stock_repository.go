package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual y el stock mínimo de un producto, sin lock.
func (r *StockRepo) Get(productID string) (*entity.Stock, error) {
	query := `
		SELECT p.id, p.minimum_stock, COALESCE(s.balance, 0), COALESCE(s.updated_at, now())
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		WHERE p.id = $1`
	return r.scanOne(query, productID)
}

// GetForUpdate obtiene saldo y stock mínimo bloqueando la fila del producto
// (SELECT FOR UPDATE). El lock serializa movimientos concurrentes sobre el
// mismo producto y no afecta a productos distintos. Si el producto no existe
// devuelve domain.ErrNotFound; si el lock no llega dentro de lock_timeout,
// domain.ErrBusy.
func (r *StockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	query := `
		SELECT p.id, p.minimum_stock, COALESCE(s.balance, 0), COALESCE(s.updated_at, now())
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		WHERE p.id = $1
		FOR UPDATE OF p`
	return r.scanOne(query, productID)
}

func (r *StockRepo) scanOne(query, productID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.MinimumStock, &s.Balance, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isLockNotAvailable(err) {
			return nil, domain.ErrBusy
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el saldo del producto.
// El CHECK balance >= 0 de la tabla actúa como backstop: una violación se
// reporta como stock insuficiente.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, balance, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET balance = EXCLUDED.balance, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.Balance)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Delete elimina la fila de saldo de un producto (limpieza en cascada).
func (r *StockRepo) Delete(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// ListLevels lista producto + saldo actual ordenado por nombre ascendente.
func (r *StockRepo) ListLevels() ([]*entity.StockLevel, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.minimum_stock, COALESCE(s.balance, 0)
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockLevel
	for rows.Next() {
		var l entity.StockLevel
		if err := rows.Scan(&l.ProductID, &l.SKU, &l.Name, &l.MinimumStock, &l.Balance); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		l.LowStock = l.Balance < l.MinimumStock
		list = append(list, &l)
	}
	return list, rows.Err()
}
