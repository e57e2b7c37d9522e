package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User representa una cuenta del sistema.
// El rol NO es modificable por el propio usuario: solo un admin puede cambiarlo.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	Address      string
	Avatar       string
	Role         string // customer, admin
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
