package repository

import "github.com/davidmr/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Search lista productos; term vacío devuelve todos. Busca en nombre y SKU.
	Search(term string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
