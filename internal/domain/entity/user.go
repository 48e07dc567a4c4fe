package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Login        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
