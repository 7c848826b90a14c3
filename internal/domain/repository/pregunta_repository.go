package repository

import "github.com/jhoicas/academico-api/internal/domain/entity"

// PreguntaRepository define el puerto de persistencia para Pregunta.
type PreguntaRepository interface {
	Create(p *entity.Pregunta) error
	GetByID(id string) (*entity.Pregunta, error)
	// Update persiste la transición a respondida (respuesta, respondedor, fecha).
	Update(p *entity.Pregunta) error
	// ListByInvestigacion devuelve las preguntas más recientes primero.
	ListByInvestigacion(investigacionID string) ([]*entity.Pregunta, error)
	DeleteByInvestigacion(investigacionID string) error
}
