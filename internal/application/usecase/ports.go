package usecase

import (
	"context"

	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

// Actor identidad que ejecuta una operación, resuelta por el middleware de
// sesión. Siempre viaja como parámetro explícito, nunca como estado global.
type Actor struct {
	ID     string
	Nombre string
	Rol    string
}

// Carga es un archivo subido ya materializado en memoria.
type Carga struct {
	Bytes  []byte
	Mime   string
	Nombre string
}

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InvestigacionRepository,
		comRepo repository.ComentarioRepository,
		pregRepo repository.PreguntaRepository,
	) error) error
}

// FichaPDFGenerator genera la ficha técnica en PDF de una investigación.
// Lo implementa pdf.MarotoFichaGenerator.
type FichaPDFGenerator interface {
	GenerarFicha(ctx context.Context, inv *entity.Investigacion, respondidas []*entity.Pregunta) ([]byte, error)
}
