package repository

import "github.com/davidmr/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el historial de movimientos.
// Los movimientos son inmutables: solo se crean, se listan y se eliminan en
// cascada junto con su producto.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	DeleteByProduct(productID string) error
}
