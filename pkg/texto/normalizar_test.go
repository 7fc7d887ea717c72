package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Francoamora/munifinanzas-sub000/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"  Pérez, JOSÉ ", "perez, jose"},
		{"Ñandú", "nandu"},
		{"GARCÍA", "garcia"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, texto.Normalizar(c.entrada), "%q", c.entrada)
	}
}

func TestContiene(t *testing.T) {
	assert.True(t, texto.Contiene("María Rodríguez", "rodrig"))
	assert.True(t, texto.Contiene("María Rodríguez", "MARÍA"))
	assert.True(t, texto.Contiene("cualquier cosa", ""))
	assert.False(t, texto.Contiene("María Rodríguez", "gomez"))
}
