package entity

import "time"

// Roles válidos para User.
const (
	RoleMaster   = "master"   // administrador
	RoleOperador = "operador" // cajero / bodega
)

// User representa un usuario del sistema. El core solo lo usa como actor opaco
// en el log de acciones; la autorización es responsabilidad del caller.
type User struct {
	ID           string
	Login        string
	Name         string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string
	Active       bool
	CreatedAt    time.Time
}
