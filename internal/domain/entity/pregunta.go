package entity

import "time"

// Respondedor identifica al investigador que respondió una pregunta.
type Respondedor struct {
	UserID string
	Nombre string
}

// Pregunta de un visitante sobre una investigación. Transiciona una sola vez
// de no respondida a respondida; responderla de nuevo es un conflicto.
type Pregunta struct {
	ID              string
	InvestigacionID string
	NombreVisitante string
	Texto           string // máx 300
	Respondida      bool
	Respuesta       string       // máx 1000
	RespondidaPor   *Respondedor // nil mientras no haya respuesta
	RespondidaEn    *time.Time
	CreatedAt       time.Time
}
