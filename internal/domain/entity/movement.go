package entity

import "time"

// Direcciones de movimiento de stock.
const (
	MovementInward  = "Inward"  // entrada
	MovementOutward = "Outward" // salida
)

// ValidDirection indica si s es una dirección de movimiento conocida.
func ValidDirection(s string) bool {
	return s == MovementInward || s == MovementOutward
}

// Movement representa un movimiento de stock (entrada o salida).
// Es inmutable: se crea una única vez al registrarse y nunca se modifica.
type Movement struct {
	ID        string
	ProductID string
	UserID    string // responsable del movimiento
	Direction string
	Quantity  int64     // siempre positivo; la dirección define el signo
	MovedAt   time.Time // fecha informada por el caller o la de procesamiento
	CreatedAt time.Time
}
