package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

var _ repository.PreguntaRepository = (*PreguntaRepo)(nil)

// PreguntaRepo implementación del puerto PreguntaRepository sobre PostgreSQL.
type PreguntaRepo struct {
	q Querier
}

// NewPreguntaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPreguntaRepository(q Querier) *PreguntaRepo {
	return &PreguntaRepo{q: q}
}

const preguntaCols = `
	id, investigacion_id, nombre_visitante, texto,
	respondida, respuesta, respondida_por_id, respondida_por_nombre, respondida_en, created_at`

// Create persiste una pregunta sin responder.
func (r *PreguntaRepo) Create(p *entity.Pregunta) error {
	query := `
		INSERT INTO preguntas (id, investigacion_id, nombre_visitante, texto, respondida, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.InvestigacionID, p.NombreVisitante, p.Texto, p.Respondida, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pregunta: %w", err)
	}
	return nil
}

// GetByID obtiene una pregunta por ID. nil si no existe.
func (r *PreguntaRepo) GetByID(id string) (*entity.Pregunta, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+preguntaCols+` FROM preguntas WHERE id = $1`, id)
	p, err := scanPregunta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pregunta: %w", err)
	}
	return p, nil
}

// Update persiste la transición a respondida.
func (r *PreguntaRepo) Update(p *entity.Pregunta) error {
	var porID, porNombre *string
	if p.RespondidaPor != nil {
		porID = &p.RespondidaPor.UserID
		porNombre = &p.RespondidaPor.Nombre
	}
	query := `
		UPDATE preguntas SET
			respondida = $2, respuesta = $3, respondida_por_id = $4,
			respondida_por_nombre = $5, respondida_en = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Respondida, p.Respuesta, porID, porNombre, p.RespondidaEn,
	)
	if err != nil {
		return fmt.Errorf("update pregunta: %w", err)
	}
	return nil
}

// ListByInvestigacion lista las preguntas de una investigación, más recientes primero.
func (r *PreguntaRepo) ListByInvestigacion(investigacionID string) ([]*entity.Pregunta, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+preguntaCols+` FROM preguntas WHERE investigacion_id = $1 ORDER BY created_at DESC`,
		investigacionID)
	if err != nil {
		return nil, fmt.Errorf("list preguntas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Pregunta
	for rows.Next() {
		p, err := scanPregunta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pregunta: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// DeleteByInvestigacion elimina todas las preguntas de una investigación (cascada).
func (r *PreguntaRepo) DeleteByInvestigacion(investigacionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM preguntas WHERE investigacion_id = $1`, investigacionID)
	if err != nil {
		return fmt.Errorf("delete preguntas: %w", err)
	}
	return nil
}

func scanPregunta(row pgx.Row) (*entity.Pregunta, error) {
	var p entity.Pregunta
	var respuesta, porID, porNombre *string
	var respondidaEn *time.Time
	err := row.Scan(
		&p.ID, &p.InvestigacionID, &p.NombreVisitante, &p.Texto,
		&p.Respondida, &respuesta, &porID, &porNombre, &respondidaEn, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if respuesta != nil {
		p.Respuesta = *respuesta
	}
	if porID != nil {
		p.RespondidaPor = &entity.Respondedor{UserID: *porID}
		if porNombre != nil {
			p.RespondidaPor.Nombre = *porNombre
		}
	}
	p.RespondidaEn = respondidaEn
	return &p, nil
}
