package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidmr/almacen-api/internal/application/inventory"
	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Espera máxima por un lock de fila dentro de la transacción; superada,
// la operación falla con domain.ErrBusy en lugar de colgarse.
const lockTimeout = "3s"

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Un fallo en cualquier paso revierte todo: ningún efecto parcial queda visible.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		return fmt.Errorf("%w: set lock_timeout: %v", domain.ErrPersistence, err)
	}

	movRepo := NewMovementRepository(tx)
	stockRepo := NewStockRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, stockRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrPersistence, err)
	}
	return nil
}
