package http

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/application/usecase"
	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

// InvestigacionHandler maneja el CRUD, el listado público y la entrega de
// adjuntos binarios de investigaciones.
type InvestigacionHandler struct {
	uc      *usecase.InvestigacionUseCase
	fichaUC *usecase.FichaUseCase
}

// NewInvestigacionHandler construye el handler.
func NewInvestigacionHandler(uc *usecase.InvestigacionUseCase, fichaUC *usecase.FichaUseCase) *InvestigacionHandler {
	return &InvestigacionHandler{uc: uc, fichaUC: fichaUC}
}

// List lista investigaciones paginadas con filtros opcionales.
// GET /api/investigaciones?page=1&limit=10&area=...&grado=...&q=...
func (h *InvestigacionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	f := repository.ListFilter{
		Area:  c.Query("area"),
		Grado: c.Query("grado"),
		Q:     c.Query("q"),
	}
	out, err := h.uc.List(f, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create publica una investigación desde un multipart/form-data con los
// metadatos de texto, el archivo "pdf" (obligatorio) y cero o más archivos
// "imagenes" con su campo "descripciones" (arreglo JSON, por índice).
// POST /api/investigaciones (rol investigador)
func (h *InvestigacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvestigacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart inválido"})
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}

	if raw := form.Value["descripciones"]; len(raw) > 0 && raw[0] != "" {
		if err := json.Unmarshal([]byte(raw[0]), &in.Descripciones); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descripciones debe ser un arreglo JSON de strings"})
		}
	}

	pdfs := form.File["pdf"]
	if len(pdfs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el archivo pdf es requerido"})
	}
	pdf, err := leerCarga(pdfs[0])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo pdf"})
	}
	imagenes := make([]usecase.Carga, 0, len(form.File["imagenes"]))
	for _, fh := range form.File["imagenes"] {
		img, err := leerCarga(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer una imagen"})
		}
		imagenes = append(imagenes, img)
	}

	out, err := h.uc.Create(c.Context(), in, pdf, imagenes, actorDe(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un investigador puede publicar"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: in.Validar()})
		}
		if err == domain.ErrPayloadTooLarge {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "PAYLOAD_TOO_LARGE", Message: "el adjunto excede el tamaño permitido"})
		}
		if err == domain.ErrUnsupportedMedia {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA", Message: "tipo de archivo no soportado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDetalle entrega una investigación con sus comentarios y preguntas.
// GET /api/investigaciones/:id
func (h *InvestigacionHandler) GetDetalle(c *fiber.Ctx) error {
	out, err := h.uc.GetDetalle(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPDF entrega el PDF original como binario, no como base64.
// GET /api/investigaciones/:id/pdf
func (h *InvestigacionHandler) GetPDF(c *fiber.Ctx) error {
	meta, data, err := h.uc.GetPDF(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pdf no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "adjunto corrupto o ilegible"})
	}
	return enviarAdjunto(c, meta.Mime, meta.Nombre, data)
}

// GetImagen entrega la imagen idx del carrusel como binario.
// GET /api/investigaciones/:id/imagenes/:idx
func (h *InvestigacionHandler) GetImagen(c *fiber.Ctx) error {
	idx, err := strconv.Atoi(c.Params("idx"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idx debe ser un entero"})
	}
	meta, data, err := h.uc.GetImagen(c.Params("id"), idx)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrInvalidIndex {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "adjunto corrupto o ilegible"})
	}
	return enviarAdjunto(c, meta.Mime, meta.Nombre, data)
}

// Ficha genera y entrega la ficha técnica imprimible en PDF.
// GET /api/investigaciones/:id/ficha
func (h *InvestigacionHandler) Ficha(c *fiber.Ctx) error {
	data, nombre, err := h.fichaUC.Generar(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviarAdjunto(c, "application/pdf", nombre, data)
}

// Update edita los metadatos de texto. Solo el autor puede editar.
// PUT /api/investigaciones/:id (rol investigador)
func (h *InvestigacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvestigacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in, actorDe(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: in.Validar()})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede editar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete elimina la investigación con sus comentarios y preguntas.
// DELETE /api/investigaciones/:id (rol investigador)
func (h *InvestigacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), actorDe(c)); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor puede eliminar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// actorDe arma el actor autenticado desde los Locals del middleware de auth.
func actorDe(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Nombre: GetNombre(c), Rol: GetRol(c)}
}

// leerCarga lee el contenido de un archivo del multipart en memoria.
func leerCarga(fh *multipart.FileHeader) (usecase.Carga, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.Carga{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.Carga{}, err
	}
	return usecase.Carga{
		Bytes:  data,
		Mime:   fh.Header.Get("Content-Type"),
		Nombre: fh.Filename,
	}, nil
}

// enviarAdjunto sirve bytes con los headers del archivo original.
func enviarAdjunto(c *fiber.Ctx, mime, nombre string, data []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(data)))
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+nombre+`"`)
	return c.Send(data)
}
