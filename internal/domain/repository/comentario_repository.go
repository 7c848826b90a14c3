package repository

import "github.com/jhoicas/academico-api/internal/domain/entity"

// ComentarioRepository define el puerto de persistencia para Comentario.
type ComentarioRepository interface {
	Create(c *entity.Comentario) error
	// ListByInvestigacion devuelve los comentarios más recientes primero.
	ListByInvestigacion(investigacionID string) ([]*entity.Comentario, error)
	DeleteByInvestigacion(investigacionID string) error
}
