package repository

import "github.com/jhoicas/academico-api/internal/domain/entity"

// ListFilter filtros del listado público. Campos vacíos no filtran.
// Q se compara normalizado (sin tildes, minúsculas) contra título y descripción.
type ListFilter struct {
	Area  string
	Grado string
	Q     string
}

// InvestigacionRepository define el puerto de persistencia para Investigacion.
// Los métodos Get* de metadatos nunca devuelven contenido base64; solo
// GetPDF y GetImagen materializan el adjunto completo.
type InvestigacionRepository interface {
	// Create persiste la investigación con su PDF y sus imágenes embebidas.
	Create(inv *entity.Investigacion) error
	// GetMeta devuelve la investigación sin base64 (adjuntos solo con
	// mime/nombre/size/descripción). nil si no existe.
	GetMeta(id string) (*entity.Investigacion, error)
	// GetPDF devuelve el adjunto PDF completo. domain.ErrNotFound si la
	// investigación o el payload no existen.
	GetPDF(id string) (*entity.Archivo, error)
	// GetImagen devuelve la imagen en el índice idx (0-based, orden del
	// carrusel). domain.ErrNotFound si la investigación no existe;
	// domain.ErrInvalidIndex si idx está fuera de [0, len).
	GetImagen(id string, idx int) (*entity.Archivo, error)
	// UpdateMeta persiste solo los metadatos editables (los adjuntos son
	// inmutables después de crear).
	UpdateMeta(inv *entity.Investigacion) error
	// Delete elimina la investigación (no sus artefactos sociales; eso lo
	// orquesta el caso de uso dentro de una transacción).
	Delete(id string) error
	// List devuelve una página de metadatos ordenada por título ascendente
	// y el total de coincidencias.
	List(f ListFilter, limit, offset int) ([]*entity.Investigacion, int, error)
	// AgregarPuntaje suma un puntaje al agregado almacenado (suma+conteo) y
	// devuelve el nuevo promedio. Una sola sentencia: sin carrera de
	// lectura-modificación-escritura.
	AgregarPuntaje(id string, puntaje int) (float64, error)
}
