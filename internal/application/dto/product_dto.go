package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Weight       decimal.Decimal `json:"weight"`
	Attributes   json.RawMessage `json:"attributes"`
	MinimumStock *int64          `json:"minimum_stock"`
}

// UpdateProductRequest entrada para actualizar un producto (el saldo se maneja vía movimientos).
type UpdateProductRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	Weight       *decimal.Decimal `json:"weight"`
	Attributes   json.RawMessage  `json:"attributes"`
	MinimumStock *int64           `json:"minimum_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Weight       decimal.Decimal `json:"weight"`
	Attributes   json.RawMessage `json:"attributes,omitempty"`
	MinimumStock int64           `json:"minimum_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
