package entity

import "time"

// Roles válidos para Usuario.
const (
	RolInvestigador = "investigador"
	RolExplorador   = "explorador"
	RolAdmin        = "admin"
)

// RolValido indica si rol es uno de los roles conocidos.
func RolValido(rol string) bool {
	return rol == RolInvestigador || rol == RolExplorador || rol == RolAdmin
}

// PuedePublicar indica si el rol permite crear investigaciones y responder
// preguntas (admin es un superconjunto de investigador).
func PuedePublicar(rol string) bool {
	return rol == RolInvestigador || rol == RolAdmin
}

// Usuario representa una cuenta del sistema. Inmutable salvo el password.
type Usuario struct {
	ID           string
	Fullname     string
	Email        string // único, en minúsculas
	Username     string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Rol          string // investigador, explorador, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
