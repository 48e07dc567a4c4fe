package repository

import "github.com/davidmr/almacen-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el saldo por producto.
// GetForUpdate y Upsert se usan dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y devuelve
	// saldo y stock mínimo. Retorna domain.ErrNotFound si el producto no existe
	// y domain.ErrBusy si el lock no se obtiene en el tiempo acordado.
	GetForUpdate(productID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	Delete(productID string) error
	// ListLevels devuelve producto + saldo ordenado por nombre ascendente.
	ListLevels() ([]*entity.StockLevel, error)
}
