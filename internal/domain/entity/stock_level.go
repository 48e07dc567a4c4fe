package entity

// StockLevel es la fila del listado de inventario: producto más su saldo actual.
// LowStock refleja la condición permanente saldo < mínimo (solo informativa;
// la alerta de movimiento se calcula aparte y únicamente en salidas).
type StockLevel struct {
	ProductID    string
	SKU          string
	Name         string
	MinimumStock int64
	Balance      int64
	LowStock     bool
}
