package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

// SocialUseCase comentarios, preguntas y respuestas de una investigación.
type SocialUseCase struct {
	tx       TxRunner
	invRepo  repository.InvestigacionRepository
	comRepo  repository.ComentarioRepository
	pregRepo repository.PreguntaRepository
}

// NewSocialUseCase construye el caso de uso.
func NewSocialUseCase(tx TxRunner, invRepo repository.InvestigacionRepository, comRepo repository.ComentarioRepository, pregRepo repository.PreguntaRepository) *SocialUseCase {
	return &SocialUseCase{tx: tx, invRepo: invRepo, comRepo: comRepo, pregRepo: pregRepo}
}

// AddComentario registra un comentario de visitante (sin sesión) y actualiza
// el agregado de puntaje en la misma transacción: el promedio que queda
// persistido siempre refleja el comentario recién insertado.
func (uc *SocialUseCase) AddComentario(ctx context.Context, investigacionID string, in dto.CreateComentarioRequest) (*dto.ComentarioResponse, error) {
	if len(in.Validar()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invRepo.GetMeta(investigacionID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	nombre := in.NombreVisitante
	if nombre == "" {
		nombre = entity.NombreVisitanteDefault
	}
	c := &entity.Comentario{
		ID:              uuid.New().String(),
		InvestigacionID: investigacionID,
		NombreVisitante: nombre,
		Texto:           in.Texto,
		Puntaje:         in.Puntaje,
		CreatedAt:       time.Now(),
	}

	err = uc.tx.Run(ctx, func(invRepo repository.InvestigacionRepository, comRepo repository.ComentarioRepository, _ repository.PreguntaRepository) error {
		if err := comRepo.Create(c); err != nil {
			return err
		}
		_, err := invRepo.AgregarPuntaje(investigacionID, c.Puntaje)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toComentarioResponse(c), nil
}

// AskPregunta registra la pregunta de un visitante sobre una investigación existente.
func (uc *SocialUseCase) AskPregunta(investigacionID string, in dto.CreatePreguntaRequest) (*dto.PreguntaResponse, error) {
	if len(in.Validar()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invRepo.GetMeta(investigacionID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	nombre := in.NombreVisitante
	if nombre == "" {
		nombre = entity.NombreVisitanteDefault
	}
	p := &entity.Pregunta{
		ID:              uuid.New().String(),
		InvestigacionID: investigacionID,
		NombreVisitante: nombre,
		Texto:           in.Texto,
		CreatedAt:       time.Now(),
	}
	if err := uc.pregRepo.Create(p); err != nil {
		return nil, err
	}
	return toPreguntaResponse(p), nil
}

// Responder transiciona una pregunta de no respondida a respondida, una sola
// vez: responder de nuevo es un conflicto y la respuesta existente no se toca.
// Solo investigadores o admin; respuesta, respondedor y fecha se estampan juntos.
func (uc *SocialUseCase) Responder(preguntaID string, in dto.ResponderRequest, actor Actor) (*dto.PreguntaResponse, error) {
	if !entity.PuedePublicar(actor.Rol) {
		return nil, domain.ErrForbidden
	}
	if len(in.Validar()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pregRepo.GetByID(preguntaID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Respondida {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	p.Respondida = true
	p.Respuesta = in.Respuesta
	p.RespondidaPor = &entity.Respondedor{UserID: actor.ID, Nombre: actor.Nombre}
	p.RespondidaEn = &now
	if err := uc.pregRepo.Update(p); err != nil {
		return nil, err
	}
	return toPreguntaResponse(p), nil
}

func toComentarioResponse(c *entity.Comentario) *dto.ComentarioResponse {
	if c == nil {
		return nil
	}
	return &dto.ComentarioResponse{
		ID:              c.ID,
		InvestigacionID: c.InvestigacionID,
		NombreVisitante: c.NombreVisitante,
		Texto:           c.Texto,
		Puntaje:         c.Puntaje,
		CreatedAt:       c.CreatedAt,
	}
}

func toPreguntaResponse(p *entity.Pregunta) *dto.PreguntaResponse {
	if p == nil {
		return nil
	}
	out := &dto.PreguntaResponse{
		ID:              p.ID,
		InvestigacionID: p.InvestigacionID,
		NombreVisitante: p.NombreVisitante,
		Texto:           p.Texto,
		Respondida:      p.Respondida,
		Respuesta:       p.Respuesta,
		RespondidaEn:    p.RespondidaEn,
		CreatedAt:       p.CreatedAt,
	}
	if p.RespondidaPor != nil {
		out.RespondidaPor = &dto.RespondedorResponse{UserID: p.RespondidaPor.UserID, Nombre: p.RespondidaPor.Nombre}
	}
	return out
}
