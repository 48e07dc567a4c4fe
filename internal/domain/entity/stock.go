package entity

import "time"

// Stock representa el saldo actual de un producto.
// MinimumStock viene del producto (join) para que la lectura bajo lock
// entregue saldo y umbral en una sola consulta consistente.
type Stock struct {
	ProductID    string
	Balance      int64
	MinimumStock int64
	UpdatedAt    time.Time
}
