package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

var _ repository.ComentarioRepository = (*ComentarioRepo)(nil)

// ComentarioRepo implementación del puerto ComentarioRepository sobre PostgreSQL.
type ComentarioRepo struct {
	q Querier
}

// NewComentarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComentarioRepository(q Querier) *ComentarioRepo {
	return &ComentarioRepo{q: q}
}

// Create persiste un comentario.
func (r *ComentarioRepo) Create(c *entity.Comentario) error {
	query := `
		INSERT INTO comentarios (id, investigacion_id, nombre_visitante, texto, puntaje, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.InvestigacionID, c.NombreVisitante, c.Texto, c.Puntaje, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comentario: %w", err)
	}
	return nil
}

// ListByInvestigacion lista los comentarios de una investigación, más recientes primero.
func (r *ComentarioRepo) ListByInvestigacion(investigacionID string) ([]*entity.Comentario, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, investigacion_id, nombre_visitante, texto, puntaje, created_at
		FROM comentarios WHERE investigacion_id = $1 ORDER BY created_at DESC`, investigacionID)
	if err != nil {
		return nil, fmt.Errorf("list comentarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Comentario
	for rows.Next() {
		var c entity.Comentario
		if err := rows.Scan(&c.ID, &c.InvestigacionID, &c.NombreVisitante, &c.Texto, &c.Puntaje, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comentario: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// DeleteByInvestigacion elimina todos los comentarios de una investigación (cascada).
func (r *ComentarioRepo) DeleteByInvestigacion(investigacionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM comentarios WHERE investigacion_id = $1`, investigacionID)
	if err != nil {
		return fmt.Errorf("delete comentarios: %w", err)
	}
	return nil
}
