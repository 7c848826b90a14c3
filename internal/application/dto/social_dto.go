package dto

import (
	"time"
	"unicode/utf8"
)

// CreateComentarioRequest entrada pública para comentar y puntuar.
type CreateComentarioRequest struct {
	NombreVisitante string `json:"nombreVisitante"`
	Texto           string `json:"texto" validate:"required,max=100"`
	Puntaje         int    `json:"puntaje" validate:"required,min=1,max=5"`
}

// Validar valida el comentario.
func (r CreateComentarioRequest) Validar() []FieldError {
	var errs []FieldError
	if utf8.RuneCountInString(r.NombreVisitante) > 60 {
		errs = append(errs, FieldError{Campo: "nombreVisitante", Mensaje: "máximo 60 caracteres"})
	}
	errs = append(errs, validarRango("texto", r.Texto, 1, 100)...)
	if r.Puntaje < 1 || r.Puntaje > 5 {
		errs = append(errs, FieldError{Campo: "puntaje", Mensaje: "puntaje entero entre 1 y 5"})
	}
	return errs
}

// ComentarioResponse salida de un comentario.
type ComentarioResponse struct {
	ID              string    `json:"id"`
	InvestigacionID string    `json:"investigacionId"`
	NombreVisitante string    `json:"nombreVisitante"`
	Texto           string    `json:"texto"`
	Puntaje         int       `json:"puntaje"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreatePreguntaRequest entrada pública para preguntar.
type CreatePreguntaRequest struct {
	NombreVisitante string `json:"nombreVisitante"`
	Texto           string `json:"texto" validate:"required,max=300"`
}

// Validar valida la pregunta.
func (r CreatePreguntaRequest) Validar() []FieldError {
	var errs []FieldError
	if utf8.RuneCountInString(r.NombreVisitante) > 60 {
		errs = append(errs, FieldError{Campo: "nombreVisitante", Mensaje: "máximo 60 caracteres"})
	}
	errs = append(errs, validarRango("texto", r.Texto, 1, 300)...)
	return errs
}

// RespondedorResponse quién respondió.
type RespondedorResponse struct {
	UserID string `json:"userId"`
	Nombre string `json:"nombre"`
}

// PreguntaResponse salida de una pregunta, con respuesta si existe.
type PreguntaResponse struct {
	ID              string               `json:"id"`
	InvestigacionID string               `json:"investigacionId"`
	NombreVisitante string               `json:"nombreVisitante"`
	Texto           string               `json:"texto"`
	Respondida      bool                 `json:"respondida"`
	Respuesta       string               `json:"respuesta,omitempty"`
	RespondidaPor   *RespondedorResponse `json:"respondidaPor,omitempty"`
	RespondidaEn    *time.Time           `json:"respondidaEn,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// ResponderRequest entrada del investigador para responder una pregunta.
type ResponderRequest struct {
	Respuesta string `json:"respuesta" validate:"required,max=1000"`
}

// Validar valida la respuesta.
func (r ResponderRequest) Validar() []FieldError {
	return validarRango("respuesta", r.Respuesta, 1, 1000)
}
