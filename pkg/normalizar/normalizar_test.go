package normalizar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/academico-api/pkg/normalizar"
)

func TestTexto_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "investigacion", normalizar.Texto("Investigación"))
	assert.Equal(t, "biologia marina", normalizar.Texto("BIOLOGÍA Marina"))
	assert.Equal(t, "nino", normalizar.Texto("Niño"))
}

func TestTexto_TextoSinTildesQuedaIgual(t *testing.T) {
	assert.Equal(t, "fotosintesis", normalizar.Texto("fotosintesis"))
	assert.Equal(t, "", normalizar.Texto(""))
}
