package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// TestSiguienteEstado recorre la tabla de transiciones completa: los pares
// válidos devuelven su destino y todo lo demás se rechaza. En particular una
// orden CERRADA no admite ninguna acción.
func TestSiguienteEstado(t *testing.T) {
	casos := []struct {
		actual  string
		accion  string
		destino string
		ok      bool
	}{
		{entity.OrdenBORRADOR, entity.AccionAutorizar, entity.OrdenAUTORIZADA, true},
		{entity.OrdenBORRADOR, entity.AccionAnular, entity.OrdenANULADA, true},
		{entity.OrdenBORRADOR, entity.AccionCerrar, "", false},
		{entity.OrdenBORRADOR, entity.AccionReabrir, "", false},

		{entity.OrdenAUTORIZADA, entity.AccionCerrar, entity.OrdenCERRADA, true},
		{entity.OrdenAUTORIZADA, entity.AccionAnular, entity.OrdenANULADA, true},
		{entity.OrdenAUTORIZADA, entity.AccionAutorizar, "", false},
		{entity.OrdenAUTORIZADA, entity.AccionReabrir, "", false},

		{entity.OrdenCERRADA, entity.AccionAutorizar, "", false},
		{entity.OrdenCERRADA, entity.AccionCerrar, "", false},
		{entity.OrdenCERRADA, entity.AccionAnular, "", false},
		{entity.OrdenCERRADA, entity.AccionReabrir, "", false},

		{entity.OrdenANULADA, entity.AccionReabrir, entity.OrdenBORRADOR, true},
		{entity.OrdenANULADA, entity.AccionAnular, "", false},
		{entity.OrdenANULADA, entity.AccionCerrar, "", false},

		{"INEXISTENTE", entity.AccionAutorizar, "", false},
	}

	for _, c := range casos {
		destino, ok := entity.SiguienteEstado(c.actual, c.accion)
		assert.Equal(t, c.ok, ok, "%s + %s", c.actual, c.accion)
		assert.Equal(t, c.destino, destino, "%s + %s", c.actual, c.accion)
	}
}

func TestTotalLineas(t *testing.T) {
	lineas := []*entity.OrdenLinea{
		{Monto: decimal.RequireFromString("100.50")},
		{Monto: decimal.RequireFromString("49.50")},
		{Monto: decimal.RequireFromString("0.25")},
	}
	assert.True(t, entity.TotalLineas(lineas).Equal(decimal.RequireFromString("150.25")))
	assert.True(t, entity.TotalLineas(nil).IsZero())
}

func TestEsEditable(t *testing.T) {
	assert.True(t, (&entity.Orden{Estado: entity.OrdenBORRADOR}).EsEditable())
	assert.False(t, (&entity.Orden{Estado: entity.OrdenAUTORIZADA}).EsEditable())
	assert.False(t, (&entity.Orden{Estado: entity.OrdenCERRADA}).EsEditable())
	assert.False(t, (&entity.Orden{Estado: entity.OrdenANULADA}).EsEditable())
}

func TestDeltaStock(t *testing.T) {
	cinco := decimal.NewFromInt(5)

	assert.True(t, entity.DeltaStock(entity.MovStockENTRADA, cinco).Equal(cinco))
	assert.True(t, entity.DeltaStock(entity.MovStockDEVOLUCION, cinco).Equal(cinco))
	assert.True(t, entity.DeltaStock(entity.MovStockSALIDA, cinco).Equal(cinco.Neg()))
	assert.True(t, entity.DeltaStock(entity.MovStockPRESTAMO, cinco).Equal(cinco.Neg()))
	// AJUSTE conserva el signo con el que se cargó
	assert.True(t, entity.DeltaStock(entity.MovStockAJUSTE, cinco.Neg()).Equal(cinco.Neg()))
}
