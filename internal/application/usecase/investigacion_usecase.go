package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/documento"
	"github.com/jhoicas/academico-api/internal/domain/entity"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

// InvestigacionUseCase CRUD y listado de investigaciones.
type InvestigacionUseCase struct {
	tx       TxRunner
	invRepo  repository.InvestigacionRepository
	comRepo  repository.ComentarioRepository
	pregRepo repository.PreguntaRepository
	codec    *documento.Codec
}

// NewInvestigacionUseCase construye el caso de uso.
func NewInvestigacionUseCase(
	tx TxRunner,
	invRepo repository.InvestigacionRepository,
	comRepo repository.ComentarioRepository,
	pregRepo repository.PreguntaRepository,
	codec *documento.Codec,
) *InvestigacionUseCase {
	return &InvestigacionUseCase{tx: tx, invRepo: invRepo, comRepo: comRepo, pregRepo: pregRepo, codec: codec}
}

// Create publica una investigación: valida metadatos, codifica el PDF
// (obligatorio) y las imágenes (opcionales, 0..N) y persiste todo en una
// transacción. La codificación falla antes de tocar la base de datos.
// La respuesta nunca incluye contenido base64.
func (uc *InvestigacionUseCase) Create(ctx context.Context, in dto.CreateInvestigacionRequest, pdf Carga, imagenes []Carga, actor Actor) (*dto.InvestigacionResponse, error) {
	if !entity.PuedePublicar(actor.Rol) {
		return nil, domain.ErrForbidden
	}
	if len(in.Validar()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(pdf.Bytes) == 0 {
		return nil, domain.ErrInvalidInput
	}

	archivoPDF, err := uc.codec.EncodePDF(pdf.Bytes, pdf.Mime, pdf.Nombre)
	if err != nil {
		return nil, err
	}
	imgs := make([]entity.Imagen, 0, len(imagenes))
	for i, carga := range imagenes {
		a, err := uc.codec.EncodeImagen(carga.Bytes, carga.Mime, carga.Nombre)
		if err != nil {
			return nil, err
		}
		descripcion := ""
		if i < len(in.Descripciones) {
			descripcion = in.Descripciones[i]
		}
		imgs = append(imgs, entity.Imagen{Archivo: *a, Descripcion: descripcion})
	}

	now := time.Now()
	inv := &entity.Investigacion{
		ID:              uuid.New().String(),
		Titulo:          in.Titulo,
		Area:            in.Area,
		GradoAcademico:  in.GradoAcademico,
		Descripcion:     in.Descripcion,
		Conclusiones:    in.Conclusiones,
		Recomendaciones: in.Recomendaciones,
		PDF:             *archivoPDF,
		Imagenes:        imgs,
		Autor:           entity.Autor{UserID: actor.ID, Nombre: actor.Nombre},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.tx.Run(ctx, func(invRepo repository.InvestigacionRepository, _ repository.ComentarioRepository, _ repository.PreguntaRepository) error {
		return invRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return toInvestigacionResponse(inv), nil
}

// GetDetalle devuelve la investigación (sin base64) con sus comentarios y
// preguntas, más recientes primero.
func (uc *InvestigacionUseCase) GetDetalle(id string) (*dto.InvestigacionDetalleResponse, error) {
	inv, err := uc.invRepo.GetMeta(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	comentarios, err := uc.comRepo.ListByInvestigacion(id)
	if err != nil {
		return nil, err
	}
	preguntas, err := uc.pregRepo.ListByInvestigacion(id)
	if err != nil {
		return nil, err
	}

	out := &dto.InvestigacionDetalleResponse{
		Inv:         *toInvestigacionResponse(inv),
		Comentarios: make([]dto.ComentarioResponse, 0, len(comentarios)),
		Preguntas:   make([]dto.PreguntaResponse, 0, len(preguntas)),
	}
	for _, c := range comentarios {
		out.Comentarios = append(out.Comentarios, *toComentarioResponse(c))
	}
	for _, p := range preguntas {
		out.Preguntas = append(out.Preguntas, *toPreguntaResponse(p))
	}
	return out, nil
}

// GetPDF materializa el PDF completo para servirlo.
func (uc *InvestigacionUseCase) GetPDF(id string) (*entity.Archivo, []byte, error) {
	a, err := uc.invRepo.GetPDF(id)
	if err != nil {
		return nil, nil, err
	}
	raw, err := documento.Decode(a)
	if err != nil {
		return nil, nil, err
	}
	return a, raw, nil
}

// GetImagen materializa la imagen en el índice idx del carrusel.
func (uc *InvestigacionUseCase) GetImagen(id string, idx int) (*entity.Archivo, []byte, error) {
	if idx < 0 {
		return nil, nil, domain.ErrInvalidIndex
	}
	a, err := uc.invRepo.GetImagen(id, idx)
	if err != nil {
		return nil, nil, err
	}
	raw, err := documento.Decode(a)
	if err != nil {
		return nil, nil, err
	}
	return a, raw, nil
}

// Update edita solo metadatos; los adjuntos son inmutables. Únicamente el
// autor puede editar (los ids se comparan como texto: llegan por el wire).
func (uc *InvestigacionUseCase) Update(id string, in dto.UpdateInvestigacionRequest, actor Actor) (*dto.InvestigacionResponse, error) {
	if len(in.Validar()) > 0 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invRepo.GetMeta(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Autor.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if in.Titulo != nil {
		inv.Titulo = *in.Titulo
	}
	if in.Area != nil {
		inv.Area = *in.Area
	}
	if in.GradoAcademico != nil {
		inv.GradoAcademico = *in.GradoAcademico
	}
	if in.Descripcion != nil {
		inv.Descripcion = *in.Descripcion
	}
	if in.Conclusiones != nil {
		inv.Conclusiones = *in.Conclusiones
	}
	if in.Recomendaciones != nil {
		inv.Recomendaciones = *in.Recomendaciones
	}
	inv.UpdatedAt = time.Now()

	if err := uc.invRepo.UpdateMeta(inv); err != nil {
		return nil, err
	}
	return toInvestigacionResponse(inv), nil
}

// Delete elimina la investigación y, en la misma transacción, todos sus
// comentarios y preguntas. Solo el autor puede eliminar. No es reversible.
func (uc *InvestigacionUseCase) Delete(ctx context.Context, id string, actor Actor) error {
	inv, err := uc.invRepo.GetMeta(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.Autor.UserID != actor.ID {
		return domain.ErrForbidden
	}

	return uc.tx.Run(ctx, func(invRepo repository.InvestigacionRepository, comRepo repository.ComentarioRepository, pregRepo repository.PreguntaRepository) error {
		if err := comRepo.DeleteByInvestigacion(id); err != nil {
			return err
		}
		if err := pregRepo.DeleteByInvestigacion(id); err != nil {
			return err
		}
		return invRepo.Delete(id)
	})
}

// List devuelve una página del listado público, ordenada por título
// ascendente y sin campos binarios. page y limit se ajustan a sus rangos.
func (uc *InvestigacionUseCase) List(f repository.ListFilter, page dto.PageRequest) (*dto.InvestigacionListResponse, error) {
	page.Clamp()
	items, total, err := uc.invRepo.List(f, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.InvestigacionListResponse{
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
		Items: make([]dto.InvestigacionResponse, 0, len(items)),
	}
	for _, inv := range items {
		out.Items = append(out.Items, *toInvestigacionResponse(inv))
	}
	return out, nil
}

// toInvestigacionResponse mapea a DTO. El DTO no tiene campos base64, así
// que el contenido codificado no puede filtrarse en ninguna respuesta.
func toInvestigacionResponse(inv *entity.Investigacion) *dto.InvestigacionResponse {
	if inv == nil {
		return nil
	}
	imagenes := make([]dto.ImagenResponse, 0, len(inv.Imagenes))
	for _, img := range inv.Imagenes {
		imagenes = append(imagenes, dto.ImagenResponse{
			File: dto.ArchivoMetaResponse{
				Nombre: img.Archivo.Nombre,
				Mime:   img.Archivo.Mime,
				Size:   img.Archivo.Size,
			},
			Descripcion: img.Descripcion,
		})
	}
	return &dto.InvestigacionResponse{
		ID:              inv.ID,
		Titulo:          inv.Titulo,
		Area:            inv.Area,
		GradoAcademico:  inv.GradoAcademico,
		Descripcion:     inv.Descripcion,
		Conclusiones:    inv.Conclusiones,
		Recomendaciones: inv.Recomendaciones,
		PDF: dto.ArchivoMetaResponse{
			Nombre: inv.PDF.Nombre,
			Mime:   inv.PDF.Mime,
			Size:   inv.PDF.Size,
		},
		Imagenes:        imagenes,
		Autor:           dto.AutorResponse{UserID: inv.Autor.UserID, Nombre: inv.Autor.Nombre},
		PromedioPuntaje: inv.PromedioPuntaje,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}
