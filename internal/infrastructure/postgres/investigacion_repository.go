package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
	"github.com/jhoicas/academico-api/pkg/normalizar"
)

var _ repository.InvestigacionRepository = (*InvestigacionRepo)(nil)

// InvestigacionRepo implementación del puerto InvestigacionRepository sobre
// PostgreSQL. El base64 vive en columnas propias (pdf_base64 y la tabla hija
// investigacion_imagenes) y las consultas de metadatos nunca lo seleccionan.
type InvestigacionRepo struct {
	q Querier
}

// NewInvestigacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvestigacionRepository(q Querier) *InvestigacionRepo {
	return &InvestigacionRepo{q: q}
}

// Columnas de metadatos: sin pdf_base64.
const invMetaCols = `
	id, titulo, area, grado_academico, descripcion, conclusiones, recomendaciones,
	pdf_mime, pdf_nombre, pdf_size,
	autor_id, autor_nombre, puntaje_suma, puntaje_total, promedio_puntaje,
	created_at, updated_at`

// Create persiste la investigación con su PDF inline y las imágenes en la
// tabla hija, preservando el orden del carrusel con idx.
func (r *InvestigacionRepo) Create(inv *entity.Investigacion) error {
	query := `
		INSERT INTO investigaciones (
			id, titulo, titulo_norm, area, grado_academico,
			descripcion, descripcion_norm, conclusiones, recomendaciones,
			pdf_base64, pdf_mime, pdf_nombre, pdf_size,
			autor_id, autor_nombre, puntaje_suma, puntaje_total, promedio_puntaje,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Titulo, normalizar.Texto(inv.Titulo), inv.Area, inv.GradoAcademico,
		inv.Descripcion, normalizar.Texto(inv.Descripcion), inv.Conclusiones, inv.Recomendaciones,
		inv.PDF.Base64, inv.PDF.Mime, inv.PDF.Nombre, inv.PDF.Size,
		inv.Autor.UserID, inv.Autor.Nombre, inv.PuntajeSuma, inv.PuntajeTotal, inv.PromedioPuntaje,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investigacion: %w", err)
	}

	for i, img := range inv.Imagenes {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO investigacion_imagenes (investigacion_id, idx, base64, mime, nombre, size, descripcion)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			inv.ID, i, img.Archivo.Base64, img.Archivo.Mime, img.Archivo.Nombre, img.Archivo.Size, img.Descripcion,
		)
		if err != nil {
			return fmt.Errorf("insert imagen %d: %w", i, err)
		}
	}
	return nil
}

// GetMeta devuelve la investigación sin contenido base64. nil si no existe.
func (r *InvestigacionRepo) GetMeta(id string) (*entity.Investigacion, error) {
	var inv entity.Investigacion
	err := r.q.QueryRow(context.Background(),
		`SELECT `+invMetaCols+` FROM investigaciones WHERE id = $1`, id).Scan(
		&inv.ID, &inv.Titulo, &inv.Area, &inv.GradoAcademico,
		&inv.Descripcion, &inv.Conclusiones, &inv.Recomendaciones,
		&inv.PDF.Mime, &inv.PDF.Nombre, &inv.PDF.Size,
		&inv.Autor.UserID, &inv.Autor.Nombre,
		&inv.PuntajeSuma, &inv.PuntajeTotal, &inv.PromedioPuntaje,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investigacion: %w", err)
	}

	imagenes, err := r.imagenesMeta(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Imagenes = imagenes
	return &inv, nil
}

func (r *InvestigacionRepo) imagenesMeta(id string) ([]entity.Imagen, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT mime, nombre, size, descripcion
		FROM investigacion_imagenes WHERE investigacion_id = $1 ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("list imagenes: %w", err)
	}
	defer rows.Close()

	var imagenes []entity.Imagen
	for rows.Next() {
		var img entity.Imagen
		if err := rows.Scan(&img.Archivo.Mime, &img.Archivo.Nombre, &img.Archivo.Size, &img.Descripcion); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		imagenes = append(imagenes, img)
	}
	return imagenes, rows.Err()
}

// GetPDF devuelve el adjunto PDF completo, base64 incluido.
func (r *InvestigacionRepo) GetPDF(id string) (*entity.Archivo, error) {
	var a entity.Archivo
	err := r.q.QueryRow(context.Background(), `
		SELECT pdf_base64, pdf_mime, pdf_nombre, pdf_size
		FROM investigaciones WHERE id = $1`, id).Scan(&a.Base64, &a.Mime, &a.Nombre, &a.Size)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get pdf: %w", err)
	}
	if a.Base64 == "" {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// GetImagen devuelve la imagen en el índice idx. Distingue investigación
// inexistente (ErrNotFound) de índice fuera de rango (ErrInvalidIndex).
func (r *InvestigacionRepo) GetImagen(id string, idx int) (*entity.Archivo, error) {
	if idx < 0 {
		return nil, domain.ErrInvalidIndex
	}
	var a entity.Archivo
	err := r.q.QueryRow(context.Background(), `
		SELECT base64, mime, nombre, size
		FROM investigacion_imagenes WHERE investigacion_id = $1 AND idx = $2`, id, idx).
		Scan(&a.Base64, &a.Mime, &a.Nombre, &a.Size)
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get imagen: %w", err)
	}

	var existe bool
	if err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM investigaciones WHERE id = $1)`, id).Scan(&existe); err != nil {
		return nil, fmt.Errorf("check investigacion: %w", err)
	}
	if !existe {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInvalidIndex
}

// UpdateMeta actualiza solo los metadatos editables; los adjuntos no se tocan.
func (r *InvestigacionRepo) UpdateMeta(inv *entity.Investigacion) error {
	query := `
		UPDATE investigaciones SET
			titulo = $2, titulo_norm = $3, area = $4, grado_academico = $5,
			descripcion = $6, descripcion_norm = $7, conclusiones = $8, recomendaciones = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Titulo, normalizar.Texto(inv.Titulo), inv.Area, inv.GradoAcademico,
		inv.Descripcion, normalizar.Texto(inv.Descripcion), inv.Conclusiones, inv.Recomendaciones,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update investigacion: %w", err)
	}
	return nil
}

// Delete elimina la investigación; las imágenes caen por FK ON DELETE CASCADE.
func (r *InvestigacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM investigaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investigacion: %w", err)
	}
	return nil
}

// List devuelve una página ordenada por título ascendente y el total de
// coincidencias. La búsqueda q compara contra las columnas normalizadas.
func (r *InvestigacionRepo) List(f repository.ListFilter, limit, offset int) ([]*entity.Investigacion, int, error) {
	where := ""
	var args []any
	agregar := func(cond string, val any) {
		args = append(args, val)
		cond = cond + "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.Area != "" {
		agregar("area = ", f.Area)
	}
	if f.Grado != "" {
		agregar("grado_academico = ", f.Grado)
	}
	if f.Q != "" {
		args = append(args, "%"+normalizar.Texto(f.Q)+"%")
		n := strconv.Itoa(len(args))
		cond := "(titulo_norm LIKE $" + n + " OR descripcion_norm LIKE $" + n + ")"
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM investigaciones`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count investigaciones: %w", err)
	}

	query := `SELECT ` + invMetaCols + ` FROM investigaciones` + where +
		` ORDER BY titulo ASC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list investigaciones: %w", err)
	}
	defer rows.Close()

	var items []*entity.Investigacion
	for rows.Next() {
		var inv entity.Investigacion
		if err := rows.Scan(
			&inv.ID, &inv.Titulo, &inv.Area, &inv.GradoAcademico,
			&inv.Descripcion, &inv.Conclusiones, &inv.Recomendaciones,
			&inv.PDF.Mime, &inv.PDF.Nombre, &inv.PDF.Size,
			&inv.Autor.UserID, &inv.Autor.Nombre,
			&inv.PuntajeSuma, &inv.PuntajeTotal, &inv.PromedioPuntaje,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan investigacion: %w", err)
		}
		items = append(items, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for _, inv := range items {
		imagenes, err := r.imagenesMeta(inv.ID)
		if err != nil {
			return nil, 0, err
		}
		inv.Imagenes = imagenes
	}
	return items, total, nil
}

// AgregarPuntaje suma un puntaje al agregado almacenado y deriva el promedio
// en la misma sentencia: no hay carrera de lectura-modificación-escritura.
func (r *InvestigacionRepo) AgregarPuntaje(id string, puntaje int) (float64, error) {
	var promedio float64
	err := r.q.QueryRow(context.Background(), `
		UPDATE investigaciones SET
			puntaje_suma = puntaje_suma + $2,
			puntaje_total = puntaje_total + 1,
			promedio_puntaje = (puntaje_suma + $2)::float8 / (puntaje_total + 1)
		WHERE id = $1
		RETURNING promedio_puntaje`, id, puntaje).Scan(&promedio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("agregar puntaje: %w", err)
	}
	return promedio, nil
}
