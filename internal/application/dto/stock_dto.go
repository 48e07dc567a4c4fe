package dto

import "time"

// RegisterMovementRequest body para POST /api/stock/movements.
// Date es opcional; vacío usa la hora de procesamiento.
type RegisterMovementRequest struct {
	ProductID string     `json:"product_id"`
	Direction string     `json:"direction"` // Inward | Outward
	Quantity  int64      `json:"quantity"`
	Date      *time.Time `json:"date,omitempty"`
}

// MovementResponse resultado de registrar un movimiento.
type MovementResponse struct {
	Success       bool  `json:"success"`
	NewBalance    int64 `json:"new_balance"`
	LowStockAlert bool  `json:"low_stock_alert"`
}

// StockLevelResponse fila del listado de inventario (ordenado por nombre).
type StockLevelResponse struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	MinimumStock int64  `json:"minimum_stock"`
	Balance      int64  `json:"balance"`
	LowStock     bool   `json:"low_stock"`
}

// MovementHistoryItem fila del historial de movimientos de un producto.
type MovementHistoryItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Direction string    `json:"direction"`
	Quantity  int64     `json:"quantity"`
	MovedAt   time.Time `json:"moved_at"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementHistoryResponse historial paginado.
type MovementHistoryResponse struct {
	Items []MovementHistoryItem `json:"items"`
	Page  PageResponse          `json:"page"`
}
