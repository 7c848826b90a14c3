package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/application/usecase"
	"github.com/jhoicas/academico-api/internal/domain"
)

// PublicoHandler maneja la participación pública: comentarios con puntaje y
// preguntas. No requiere sesión; el nombre del visitante es opcional.
type PublicoHandler struct {
	uc *usecase.SocialUseCase
}

// NewPublicoHandler construye el handler.
func NewPublicoHandler(uc *usecase.SocialUseCase) *PublicoHandler {
	return &PublicoHandler{uc: uc}
}

// AddComentario agrega un comentario con puntaje 1..5 y devuelve el comentario
// creado. El promedio de la investigación se actualiza en la misma transacción.
// POST /api/:id/comentarios (público)
func (h *PublicoHandler) AddComentario(c *fiber.Ctx) error {
	var in dto.CreateComentarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddComentario(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: in.Validar()})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AskPregunta registra una pregunta pública sin responder.
// POST /api/:id/preguntas (público)
func (h *PublicoHandler) AskPregunta(c *fiber.Ctx) error {
	var in dto.CreatePreguntaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AskPregunta(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: in.Validar()})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Responder responde una pregunta pendiente. Una pregunta solo se responde
// una vez.
// POST /api/preguntas/:pid/responder (rol investigador)
func (h *PublicoHandler) Responder(c *fiber.Ctx) error {
	var in dto.ResponderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Responder(c.Params("pid"), in, actorDe(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: in.Validar()})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un investigador puede responder"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pregunta no encontrada"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ANSWERED", Message: "la pregunta ya fue respondida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
