package entity

import "time"

// Roles válidos para User. Determinan las operaciones permitidas en todo el sistema.
const (
	RoleCustomer      = "CUSTOMER"
	RoleSeller        = "SELLER"
	RoleAdministrator = "ADMINISTRATOR"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema (cliente, vendedor o administrador).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // CUSTOMER, SELLER, ADMINISTRATOR
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si el rol es uno de los tres conocidos.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleSeller || role == RoleAdministrator
}

// CanSell indica si el usuario puede ser asignado como vendedor de un pedido.
func (u *User) CanSell() bool {
	return u.Role == RoleSeller || u.Role == RoleAdministrator
}
