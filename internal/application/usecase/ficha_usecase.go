package usecase

import (
	"context"

	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

// FichaUseCase genera la ficha técnica en PDF de una investigación:
// metadatos, autor, promedio y las preguntas ya respondidas.
type FichaUseCase struct {
	invRepo  repository.InvestigacionRepository
	pregRepo repository.PreguntaRepository
	gen      FichaPDFGenerator
}

// NewFichaUseCase construye el caso de uso.
func NewFichaUseCase(invRepo repository.InvestigacionRepository, pregRepo repository.PreguntaRepository, gen FichaPDFGenerator) *FichaUseCase {
	return &FichaUseCase{invRepo: invRepo, pregRepo: pregRepo, gen: gen}
}

// Generar arma la ficha y devuelve los bytes del PDF más el nombre sugerido.
func (uc *FichaUseCase) Generar(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invRepo.GetMeta(id)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	preguntas, err := uc.pregRepo.ListByInvestigacion(id)
	if err != nil {
		return nil, "", err
	}
	respondidas := make([]*entity.Pregunta, 0, len(preguntas))
	for _, p := range preguntas {
		if p.Respondida {
			respondidas = append(respondidas, p)
		}
	}
	raw, err := uc.gen.GenerarFicha(ctx, inv, respondidas)
	if err != nil {
		return nil, "", err
	}
	return raw, "ficha-" + inv.ID + ".pdf", nil
}
