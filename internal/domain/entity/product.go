package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// El saldo actual vive en Stock y solo lo muta el registro de movimientos;
// MinimumStock lo administra el catálogo y el motor de movimientos solo lo lee.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	Weight       decimal.Decimal // peso en kg
	Attributes   json.RawMessage // características libres del producto
	MinimumStock int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
