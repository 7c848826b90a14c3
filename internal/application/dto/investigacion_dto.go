package dto

import (
	"time"
	"unicode/utf8"

	"github.com/jhoicas/academico-api/internal/domain/entity"
)

// CreateInvestigacionRequest campos de texto del multipart de creación.
// Los archivos (pdf, imagenes) llegan aparte; Descripciones es el arreglo
// JSON opcional con la descripción de cada imagen, por índice.
type CreateInvestigacionRequest struct {
	Titulo          string   `form:"titulo"`
	Area            string   `form:"area"`
	GradoAcademico  string   `form:"gradoAcademico"`
	Descripcion     string   `form:"descripcion"`
	Conclusiones    string   `form:"conclusiones"`
	Recomendaciones string   `form:"recomendaciones"`
	Descripciones   []string `form:"-"`
}

// Validar valida los metadatos de creación.
func (r CreateInvestigacionRequest) Validar() []FieldError {
	var errs []FieldError
	errs = append(errs, validarRango("titulo", r.Titulo, 3, 120)...)
	errs = append(errs, validarRango("area", r.Area, 3, 60)...)
	if !entity.GradoValido(r.GradoAcademico) {
		errs = append(errs, FieldError{Campo: "gradoAcademico", Mensaje: "grado debe estar entre 7 y 12"})
	}
	errs = append(errs, validarRango("descripcion", r.Descripcion, 1, 500)...)
	errs = append(errs, validarRango("conclusiones", r.Conclusiones, 1, 500)...)
	errs = append(errs, validarRango("recomendaciones", r.Recomendaciones, 1, 500)...)
	return errs
}

// UpdateInvestigacionRequest edición parcial de metadatos (solo texto; los
// adjuntos son inmutables). Campos nil no se tocan.
type UpdateInvestigacionRequest struct {
	Titulo          *string `json:"titulo"`
	Area            *string `json:"area"`
	GradoAcademico  *string `json:"gradoAcademico"`
	Descripcion     *string `json:"descripcion"`
	Conclusiones    *string `json:"conclusiones"`
	Recomendaciones *string `json:"recomendaciones"`
}

// Validar valida solo los campos presentes.
func (r UpdateInvestigacionRequest) Validar() []FieldError {
	var errs []FieldError
	if r.Titulo != nil {
		errs = append(errs, validarRango("titulo", *r.Titulo, 3, 120)...)
	}
	if r.Area != nil {
		errs = append(errs, validarRango("area", *r.Area, 3, 60)...)
	}
	if r.GradoAcademico != nil && !entity.GradoValido(*r.GradoAcademico) {
		errs = append(errs, FieldError{Campo: "gradoAcademico", Mensaje: "grado debe estar entre 7 y 12"})
	}
	if r.Descripcion != nil {
		errs = append(errs, validarRango("descripcion", *r.Descripcion, 1, 500)...)
	}
	if r.Conclusiones != nil {
		errs = append(errs, validarRango("conclusiones", *r.Conclusiones, 1, 500)...)
	}
	if r.Recomendaciones != nil {
		errs = append(errs, validarRango("recomendaciones", *r.Recomendaciones, 1, 500)...)
	}
	return errs
}

func validarRango(campo, valor string, min, max int) []FieldError {
	n := utf8.RuneCountInString(valor)
	if n < min || n > max {
		return []FieldError{{Campo: campo, Mensaje: mensajeRango(min, max)}}
	}
	return nil
}

func mensajeRango(min, max int) string {
	if min <= 1 {
		return "requerido, máximo " + itoa(max) + " caracteres"
	}
	return "entre " + itoa(min) + " y " + itoa(max) + " caracteres"
}

func itoa(n int) string {
	// Evita fmt en el camino caliente de validación.
	if n == 0 {
		return "0"
	}
	var b [8]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

// ArchivoMetaResponse metadatos de un adjunto. Nunca incluye el base64.
type ArchivoMetaResponse struct {
	Nombre string `json:"originalName"`
	Mime   string `json:"mime"`
	Size   int    `json:"size"`
}

// ImagenResponse metadatos de una imagen del carrusel.
type ImagenResponse struct {
	File        ArchivoMetaResponse `json:"file"`
	Descripcion string              `json:"descripcion"`
}

// AutorResponse referencia al autor.
type AutorResponse struct {
	UserID string `json:"userId"`
	Nombre string `json:"nombre"`
}

// InvestigacionResponse salida de una investigación, siempre sin base64.
type InvestigacionResponse struct {
	ID              string           `json:"id"`
	Titulo          string           `json:"titulo"`
	Area            string           `json:"area"`
	GradoAcademico  string           `json:"gradoAcademico"`
	Descripcion     string           `json:"descripcion"`
	Conclusiones    string           `json:"conclusiones"`
	Recomendaciones string           `json:"recomendaciones"`
	PDF             ArchivoMetaResponse `json:"pdf"`
	Imagenes        []ImagenResponse `json:"imagenes"`
	Autor           AutorResponse    `json:"autor"`
	PromedioPuntaje float64          `json:"promedioPuntaje"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// InvestigacionListResponse página de listado público.
type InvestigacionListResponse struct {
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Items []InvestigacionResponse `json:"items"`
}

// InvestigacionDetalleResponse detalle con artefactos sociales, recientes primero.
type InvestigacionDetalleResponse struct {
	Inv         InvestigacionResponse `json:"inv"`
	Comentarios []ComentarioResponse  `json:"comentarios"`
	Preguntas   []PreguntaResponse    `json:"preguntas"`
}
