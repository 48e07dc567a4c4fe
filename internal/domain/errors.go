package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrBusy              = errors.New("recurso ocupado, reintentar")
	ErrPersistence       = errors.New("error de persistencia")
)

// InsufficientStockError detalla el saldo disponible al rechazar una salida.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando.
type InsufficientStockError struct {
	ProductID string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: saldo actual %d, solicitado %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
