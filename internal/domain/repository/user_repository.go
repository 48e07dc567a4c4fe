package repository

import "github.com/davidmr/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByLogin(login string) (*entity.User, error)
}
