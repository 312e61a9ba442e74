package entity

import "time"

// Roles válidos para User. El rol es binario: admin supervisa, ejecutivo registra.
const (
	RoleEjecutivo = 0
	RoleAdmin     = 1
)

// User representa un usuario del sistema. La identidad de acceso es la cédula
// (documento de identidad), no hay email.
type User struct {
	ID           int64
	Name         string
	Cedula       string // única
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         int    // RoleAdmin o RoleEjecutivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
