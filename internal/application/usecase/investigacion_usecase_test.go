package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/academico-api/internal/application/dto"
	"github.com/jhoicas/academico-api/internal/application/usecase"
	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/documento"
	"github.com/jhoicas/academico-api/internal/domain/repository"
)

func nuevoEntorno() (*usecase.InvestigacionUseCase, *usecase.SocialUseCase, *memInvRepo, *memComRepo, *memPregRepo) {
	invRepo := newMemInvRepo()
	comRepo := &memComRepo{}
	pregRepo := &memPregRepo{}
	tx := &memTx{inv: invRepo, com: comRepo, preg: pregRepo}
	codec := documento.NewCodec(0, 0)
	invUC := usecase.NewInvestigacionUseCase(tx, invRepo, comRepo, pregRepo, codec)
	socialUC := usecase.NewSocialUseCase(tx, invRepo, comRepo, pregRepo)
	return invUC, socialUC, invRepo, comRepo, pregRepo
}

var autor = usecase.Actor{ID: "u-1", Nombre: "Ana Pérez", Rol: "investigador"}

func metadatosValidos() dto.CreateInvestigacionRequest {
	return dto.CreateInvestigacionRequest{
		Titulo:          "Efecto de la luz en el frijol",
		Area:            "Biología",
		GradoAcademico:  "10",
		Descripcion:     "Estudio del crecimiento bajo distintas luces",
		Conclusiones:    "La luz azul acelera el crecimiento",
		Recomendaciones: "Repetir con más muestras",
	}
}

func cargaPDF() usecase.Carga {
	return usecase.Carga{Bytes: []byte("%PDF-1.7 tesis"), Mime: "application/pdf", Nombre: "tesis.pdf"}
}

func cargaImagen(nombre string) usecase.Carga {
	return usecase.Carga{Bytes: []byte{0x89, 0x50, 0x4e, 0x47}, Mime: "image/png", Nombre: nombre}
}

func crear(t *testing.T, uc *usecase.InvestigacionUseCase, imagenes ...usecase.Carga) *dto.InvestigacionResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), metadatosValidos(), cargaPDF(), imagenes, autor)
	require.NoError(t, err)
	return out
}

func TestCreate_RespuestaSinBase64(t *testing.T) {
	invUC, _, invRepo, _, _ := nuevoEntorno()
	out := crear(t, invUC, cargaImagen("a.png"), cargaImagen("b.png"))

	assert.Equal(t, "tesis.pdf", out.PDF.Nombre)
	assert.Equal(t, len("%PDF-1.7 tesis"), out.PDF.Size)
	assert.Len(t, out.Imagenes, 2)
	assert.Equal(t, autor.ID, out.Autor.UserID)
	assert.Zero(t, out.PromedioPuntaje)

	// El almacenamiento sí guarda el base64; la respuesta no lo expone.
	guardada := invRepo.items[out.ID]
	assert.NotEmpty(t, guardada.PDF.Base64)
	assert.NotEmpty(t, guardada.Imagenes[0].Archivo.Base64)
}

func TestCreate_ExploradorProhibido(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	_, err := invUC.Create(context.Background(), metadatosValidos(), cargaPDF(), nil, usecase.Actor{ID: "u-2", Rol: "explorador"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_SinPDFEsInvalido(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	_, err := invUC.Create(context.Background(), metadatosValidos(), usecase.Carga{}, nil, autor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PDFGrandeSeRechazaSinPersistir(t *testing.T) {
	invUC, _, invRepo, _, _ := nuevoEntorno()
	grande := usecase.Carga{Bytes: make([]byte, 11*1024*1024), Mime: "application/pdf", Nombre: "g.pdf"}
	_, err := invUC.Create(context.Background(), metadatosValidos(), grande, nil, autor)
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
	assert.Empty(t, invRepo.items, "nada debe persistirse si falla la codificación")
}

func TestGetImagen_IndiceYRoundTrip(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	out := crear(t, invUC, cargaImagen("a.png"))

	a, raw, err := invUC.GetImagen(out.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, raw, "debe devolver los bytes originales")
	assert.Equal(t, a.Size, len(raw))

	_, _, err = invUC.GetImagen(out.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	_, _, err = invUC.GetImagen(out.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	_, _, err = invUC.GetImagen("no-existe", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SoloElAutor(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	out := crear(t, invUC)

	otro := usecase.Actor{ID: "u-99", Nombre: "Otro", Rol: "investigador"}
	nuevoTitulo := "Título corregido"
	_, err := invUC.Update(out.ID, dto.UpdateInvestigacionRequest{Titulo: &nuevoTitulo}, otro)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un investigador que no es el autor no edita")

	editada, err := invUC.Update(out.ID, dto.UpdateInvestigacionRequest{Titulo: &nuevoTitulo}, autor)
	require.NoError(t, err)
	assert.Equal(t, "Título corregido", editada.Titulo)
	assert.Equal(t, out.Descripcion, editada.Descripcion, "los campos no enviados no cambian")
}

func TestDelete_CascadaDeArtefactosSociales(t *testing.T) {
	invUC, socialUC, _, comRepo, pregRepo := nuevoEntorno()
	out := crear(t, invUC)

	_, err := socialUC.AddComentario(context.Background(), out.ID, dto.CreateComentarioRequest{Texto: "Muy bueno", Puntaje: 5})
	require.NoError(t, err)
	_, err = socialUC.AskPregunta(out.ID, dto.CreatePreguntaRequest{Texto: "¿Cuántas muestras usaron?"})
	require.NoError(t, err)

	otro := usecase.Actor{ID: "u-99", Rol: "investigador"}
	assert.ErrorIs(t, invUC.Delete(context.Background(), out.ID, otro), domain.ErrForbidden)

	require.NoError(t, invUC.Delete(context.Background(), out.ID, autor))

	comentarios, _ := comRepo.ListByInvestigacion(out.ID)
	preguntas, _ := pregRepo.ListByInvestigacion(out.ID)
	assert.Empty(t, comentarios, "los comentarios deben borrarse en cascada")
	assert.Empty(t, preguntas, "las preguntas deben borrarse en cascada")

	_, err = invUC.GetDetalle(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_ClampDePaginacion(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	crear(t, invUC)

	out, err := invUC.List(repository.ListFilter{}, dto.PageRequest{Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page, "page=0 se ajusta a 1")
	assert.Equal(t, 50, out.Limit, "limit=1000 se ajusta a 50")
	assert.Equal(t, 1, out.Total)
}

func TestList_BusquedaInsensibleATildes(t *testing.T) {
	invUC, _, _, _, _ := nuevoEntorno()
	crear(t, invUC) // descripción contiene "crecimiento"

	out, err := invUC.List(repository.ListFilter{Q: "FRIJOL"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	out, err = invUC.List(repository.ListFilter{Q: "biología cuántica"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestGetDetalle_IncluyeSociales(t *testing.T) {
	invUC, socialUC, _, _, _ := nuevoEntorno()
	out := crear(t, invUC)

	_, err := socialUC.AddComentario(context.Background(), out.ID, dto.CreateComentarioRequest{Texto: "Primero", Puntaje: 4})
	require.NoError(t, err)
	_, err = socialUC.AddComentario(context.Background(), out.ID, dto.CreateComentarioRequest{Texto: "Segundo", Puntaje: 5})
	require.NoError(t, err)

	detalle, err := invUC.GetDetalle(out.ID)
	require.NoError(t, err)
	require.Len(t, detalle.Comentarios, 2)
	assert.Equal(t, "Segundo", detalle.Comentarios[0].Texto, "más recientes primero")
	assert.InDelta(t, 4.5, detalle.Inv.PromedioPuntaje, 1e-9)
}
