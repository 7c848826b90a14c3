package repository

import "github.com/jhoicas/academico-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}
