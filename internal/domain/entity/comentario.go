package entity

import "time"

// NombreVisitanteDefault se usa cuando el visitante no indica nombre.
const NombreVisitanteDefault = "Anónimo"

// Comentario es la valoración de un visitante sobre una investigación.
// Nunca se edita; solo desaparece en cascada al eliminar la investigación.
type Comentario struct {
	ID              string
	InvestigacionID string
	NombreVisitante string
	Texto           string // máx 100
	Puntaje         int    // entero en [1,5]
	CreatedAt       time.Time
}
