package inventory

import (
	"context"

	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre inventario: listado de
// saldos y historial de movimientos. Usa repositorios atados al pool (sin tx).
type StockQueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
}

// NewStockQueryUseCase construye el caso de uso de consultas.
func NewStockQueryUseCase(stockRepo repository.StockRepository, movRepo repository.MovementRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// ListLevels lista producto + saldo actual ordenado por nombre ascendente.
func (uc *StockQueryUseCase) ListLevels(ctx context.Context) ([]dto.StockLevelResponse, error) {
	levels, err := uc.stockRepo.ListLevels()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		items = append(items, dto.StockLevelResponse{
			ProductID:    l.ProductID,
			SKU:          l.SKU,
			Name:         l.Name,
			MinimumStock: l.MinimumStock,
			Balance:      l.Balance,
			LowStock:     l.LowStock,
		})
	}
	return items, nil
}

// ListMovements devuelve el historial de un producto, del más reciente al más antiguo.
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, productID string, page dto.PageRequest) (*dto.MovementHistoryResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	movs, err := uc.movRepo.ListByProduct(productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementHistoryItem, 0, len(movs))
	for _, m := range movs {
		items = append(items, dto.MovementHistoryItem{
			ID:        m.ID,
			ProductID: m.ProductID,
			UserID:    m.UserID,
			Direction: m.Direction,
			Quantity:  m.Quantity,
			MovedAt:   m.MovedAt,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.MovementHistoryResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
