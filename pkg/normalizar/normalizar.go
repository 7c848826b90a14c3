// Package normalizar prepara texto para búsqueda por subcadena insensible a
// mayúsculas y tildes: "Investigación" y "investigacion" deben coincidir.
package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarMarcas = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Texto devuelve s en minúsculas y sin marcas diacríticas.
// Si la transformación falla (entrada no válida UTF-8), degrada a minúsculas.
func Texto(s string) string {
	out, _, err := transform.String(quitarMarcas, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
