package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCliente  = "cliente"
	RoleVendedor = "vendedor"
)

// RolValido verifica que el rol pertenezca al enum conocido.
func RolValido(role string) bool {
	switch role {
	case RoleAdmin, RoleCliente, RoleVendedor:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, cliente, vendedor
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
