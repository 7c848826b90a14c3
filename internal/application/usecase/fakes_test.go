package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
	"github.com/jhoicas/academico-api/pkg/normalizar"
)

// Fakes en memoria que implementan los puertos de repositorio, para probar
// los casos de uso sin PostgreSQL.

type memInvRepo struct {
	items map[string]*entity.Investigacion
}

func newMemInvRepo() *memInvRepo {
	return &memInvRepo{items: map[string]*entity.Investigacion{}}
}

func (r *memInvRepo) Create(inv *entity.Investigacion) error {
	copia := *inv
	r.items[inv.ID] = &copia
	return nil
}

// GetMeta imita la proyección del repo real: los adjuntos vuelven sin base64.
func (r *memInvRepo) GetMeta(id string) (*entity.Investigacion, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *inv
	copia.PDF.Base64 = ""
	copia.Imagenes = make([]entity.Imagen, len(inv.Imagenes))
	for i, img := range inv.Imagenes {
		copia.Imagenes[i] = img
		copia.Imagenes[i].Archivo.Base64 = ""
	}
	return &copia, nil
}

func (r *memInvRepo) GetPDF(id string) (*entity.Archivo, error) {
	inv, ok := r.items[id]
	if !ok || inv.PDF.Base64 == "" {
		return nil, domain.ErrNotFound
	}
	a := inv.PDF
	return &a, nil
}

func (r *memInvRepo) GetImagen(id string, idx int) (*entity.Archivo, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if idx < 0 || idx >= len(inv.Imagenes) {
		return nil, domain.ErrInvalidIndex
	}
	a := inv.Imagenes[idx].Archivo
	return &a, nil
}

func (r *memInvRepo) UpdateMeta(inv *entity.Investigacion) error {
	actual, ok := r.items[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	actual.Titulo = inv.Titulo
	actual.Area = inv.Area
	actual.GradoAcademico = inv.GradoAcademico
	actual.Descripcion = inv.Descripcion
	actual.Conclusiones = inv.Conclusiones
	actual.Recomendaciones = inv.Recomendaciones
	actual.UpdatedAt = inv.UpdatedAt
	return nil
}

func (r *memInvRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *memInvRepo) List(f repository.ListFilter, limit, offset int) ([]*entity.Investigacion, int, error) {
	q := normalizar.Texto(f.Q)
	var coincide []*entity.Investigacion
	for _, inv := range r.items {
		if f.Area != "" && inv.Area != f.Area {
			continue
		}
		if f.Grado != "" && inv.GradoAcademico != f.Grado {
			continue
		}
		if q != "" &&
			!strings.Contains(normalizar.Texto(inv.Titulo), q) &&
			!strings.Contains(normalizar.Texto(inv.Descripcion), q) {
			continue
		}
		meta, _ := r.GetMeta(inv.ID)
		coincide = append(coincide, meta)
	}
	sort.Slice(coincide, func(i, j int) bool { return coincide[i].Titulo < coincide[j].Titulo })
	total := len(coincide)
	if offset >= total {
		return nil, total, nil
	}
	fin := offset + limit
	if fin > total {
		fin = total
	}
	return coincide[offset:fin], total, nil
}

func (r *memInvRepo) AgregarPuntaje(id string, puntaje int) (float64, error) {
	inv, ok := r.items[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	inv.PuntajeSuma += int64(puntaje)
	inv.PuntajeTotal++
	inv.PromedioPuntaje = float64(inv.PuntajeSuma) / float64(inv.PuntajeTotal)
	return inv.PromedioPuntaje, nil
}

type memComRepo struct {
	items []*entity.Comentario
}

func (r *memComRepo) Create(c *entity.Comentario) error {
	copia := *c
	r.items = append(r.items, &copia)
	return nil
}

func (r *memComRepo) ListByInvestigacion(invID string) ([]*entity.Comentario, error) {
	var out []*entity.Comentario
	// Más recientes primero: los fakes insertan en orden, se recorre al revés.
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].InvestigacionID == invID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *memComRepo) DeleteByInvestigacion(invID string) error {
	filtrado := r.items[:0]
	for _, c := range r.items {
		if c.InvestigacionID != invID {
			filtrado = append(filtrado, c)
		}
	}
	r.items = filtrado
	return nil
}

type memPregRepo struct {
	items []*entity.Pregunta
}

func (r *memPregRepo) Create(p *entity.Pregunta) error {
	copia := *p
	r.items = append(r.items, &copia)
	return nil
}

func (r *memPregRepo) GetByID(id string) (*entity.Pregunta, error) {
	for _, p := range r.items {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memPregRepo) Update(p *entity.Pregunta) error {
	for i, actual := range r.items {
		if actual.ID == p.ID {
			copia := *p
			r.items[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPregRepo) ListByInvestigacion(invID string) ([]*entity.Pregunta, error) {
	var out []*entity.Pregunta
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].InvestigacionID == invID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *memPregRepo) DeleteByInvestigacion(invID string) error {
	filtrado := r.items[:0]
	for _, p := range r.items {
		if p.InvestigacionID != invID {
			filtrado = append(filtrado, p)
		}
	}
	r.items = filtrado
	return nil
}

// memTx ejecuta el callback directamente sobre los fakes (sin transacción real).
type memTx struct {
	inv  *memInvRepo
	com  *memComRepo
	preg *memPregRepo
}

func (t *memTx) Run(_ context.Context, fn func(
	invRepo repository.InvestigacionRepository,
	comRepo repository.ComentarioRepository,
	pregRepo repository.PreguntaRepository,
) error) error {
	return fn(t.inv, t.com, t.preg)
}
