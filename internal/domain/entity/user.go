package entity

import "time"

// Roles conocidos. El rol se transporta en el token pero hoy no restringe
// operaciones: cualquier usuario autenticado puede ejecutar cualquier acción.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Role         string
	CreatedAt    time.Time
}
