package documento_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/documento"
)

func TestEncodePDF_RoundTrip(t *testing.T) {
	c := documento.NewCodec(0, 0)
	raw := []byte("%PDF-1.7 contenido de prueba")

	a, err := c.EncodePDF(raw, "application/pdf", "tesis.pdf")
	require.NoError(t, err)

	assert.Equal(t, len(raw), a.Size, "Size debe ser el largo decodificado")
	assert.Equal(t, "application/pdf", a.Mime)
	assert.Equal(t, "tesis.pdf", a.Nombre)
	assert.NotContains(t, a.Base64, "%PDF", "el contenido debe quedar codificado")

	vuelta, err := documento.Decode(a)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(raw, vuelta), "decode debe devolver los bytes originales exactos")
	assert.Len(t, vuelta, a.Size)
}

func TestEncodePDF_MimeIncorrecto(t *testing.T) {
	c := documento.NewCodec(0, 0)
	_, err := c.EncodePDF([]byte("datos"), "image/png", "foto.png")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestEncodePDF_ExcedeTope(t *testing.T) {
	// Tope de 10MB: un payload de 11MB debe rechazarse antes de codificar.
	c := documento.NewCodec(10*1024*1024, 0)
	grande := make([]byte, 11*1024*1024)
	_, err := c.EncodePDF(grande, "application/pdf", "tesis.pdf")
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestEncodeImagen_AceptaCualquierImagen(t *testing.T) {
	c := documento.NewCodec(0, 0)
	for _, mime := range []string{"image/png", "image/jpeg", "image/webp"} {
		a, err := c.EncodeImagen([]byte{0x89, 0x50, 0x4e, 0x47}, mime, "imagen")
		require.NoError(t, err, mime)
		assert.Equal(t, mime, a.Mime)
	}
}

func TestEncodeImagen_RechazaNoImagen(t *testing.T) {
	c := documento.NewCodec(0, 0)
	_, err := c.EncodeImagen([]byte("datos"), "application/pdf", "doc.pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestEncodeImagen_ExcedeTope(t *testing.T) {
	c := documento.NewCodec(0, 5*1024*1024)
	grande := make([]byte, 5*1024*1024+1)
	_, err := c.EncodeImagen(grande, "image/png", "grande.png")
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestEncode_VacioEsInvalido(t *testing.T) {
	c := documento.NewCodec(0, 0)
	_, err := c.EncodePDF(nil, "application/pdf", "vacio.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_SinContenido(t *testing.T) {
	_, err := documento.Decode(nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
