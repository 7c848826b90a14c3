// Package documento codifica y decodifica los adjuntos binarios que viven
// inline (base64) dentro de una investigación. Transformación pura: sin I/O
// de disco, el adjunto completo se materializa en memoria.
package documento

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jhoicas/academico-api/internal/domain"
	"github.com/jhoicas/academico-api/internal/domain/entity"
)

// Topes por defecto por clase de adjunto.
const (
	MaxPDFBytesDefault    = 10 * 1024 * 1024
	MaxImagenBytesDefault = 5 * 1024 * 1024
)

// MimePDF es el único mime aceptado para el adjunto PDF.
const MimePDF = "application/pdf"

// Codec valida y codifica adjuntos según su clase.
type Codec struct {
	maxPDF    int
	maxImagen int
}

// NewCodec construye el codec. Valores <= 0 usan los topes por defecto.
func NewCodec(maxPDFBytes, maxImagenBytes int) *Codec {
	if maxPDFBytes <= 0 {
		maxPDFBytes = MaxPDFBytesDefault
	}
	if maxImagenBytes <= 0 {
		maxImagenBytes = MaxImagenBytesDefault
	}
	return &Codec{maxPDF: maxPDFBytes, maxImagen: maxImagenBytes}
}

// EncodePDF valida clase y tamaño y devuelve el Archivo codificado.
// El mime debe ser exactamente application/pdf.
func (c *Codec) EncodePDF(raw []byte, mime, nombre string) (*entity.Archivo, error) {
	if mime != MimePDF {
		return nil, domain.ErrUnsupportedMedia
	}
	return encode(raw, mime, nombre, c.maxPDF)
}

// EncodeImagen valida clase y tamaño y devuelve el Archivo codificado.
// Acepta cualquier mime de clase image/*.
func (c *Codec) EncodeImagen(raw []byte, mime, nombre string) (*entity.Archivo, error) {
	if !strings.HasPrefix(mime, "image/") {
		return nil, domain.ErrUnsupportedMedia
	}
	return encode(raw, mime, nombre, c.maxImagen)
}

func encode(raw []byte, mime, nombre string, tope int) (*entity.Archivo, error) {
	if len(raw) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(raw) > tope {
		return nil, domain.ErrPayloadTooLarge
	}
	return &entity.Archivo{
		Base64: base64.StdEncoding.EncodeToString(raw),
		Mime:   mime,
		Nombre: nombre,
		Size:   len(raw),
	}, nil
}

// Decode reconstruye el flujo original de bytes de un Archivo.
// Nunca decodifica parcialmente: error o bytes completos.
func Decode(a *entity.Archivo) ([]byte, error) {
	if a == nil || a.Base64 == "" {
		return nil, domain.ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(a.Base64)
	if err != nil {
		return nil, fmt.Errorf("decodificar adjunto %q: %w", a.Nombre, err)
	}
	return raw, nil
}
