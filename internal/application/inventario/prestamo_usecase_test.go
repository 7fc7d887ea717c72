package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

func nuevoEntornoPrestamos(t *testing.T, stockInicial string) (*entorno, *inventario.PrestamoUseCase) {
	t.Helper()
	e := nuevoEntorno(t, stockInicial, true)
	beneficiarios := &beneficiarioRepoFake{beneficiarios: map[string]*entity.Beneficiario{
		"benef-1": {ID: "benef-1", Nombre: "Juan", Apellido: "Pérez"},
	}}
	tx := &txRunnerFake{insumos: e.insumos, movs: e.movs, prestamos: e.prestamos}
	uc := inventario.NewPrestamoUseCase(tx, e.insumos, e.prestamos, beneficiarios)
	return e, uc
}

// Abrir un préstamo descuenta stock con un movimiento PRESTAMO en la misma
// operación.
func TestPrestamo_CrearDescuentaStock(t *testing.T) {
	e, uc := nuevoEntornoPrestamos(t, "5")

	prestamo, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(2),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PrestamoPENDIENTE, prestamo.Estado)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(3)))

	movs, _ := e.movs.ListByInsumo("cemento-1", 100, 0)
	require.Len(t, movs, 2, "carga inicial + préstamo")
	ultimo := movs[len(movs)-1]
	assert.Equal(t, entity.MovStockPRESTAMO, ultimo.Tipo)
	assert.True(t, ultimo.Cantidad.Equal(decimal.NewFromInt(-2)))
	assert.Contains(t, ultimo.Referencia, "Pérez")
}

func TestPrestamo_SinStockSuficienteSeRechaza(t *testing.T) {
	e, uc := nuevoEntornoPrestamos(t, "1")

	_, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(3),
	})

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(1)), "el stock no debe cambiar")
}

func TestPrestamo_SoloHerramientas(t *testing.T) {
	e := nuevoEntorno(t, "5", false) // no es herramienta
	beneficiarios := &beneficiarioRepoFake{beneficiarios: map[string]*entity.Beneficiario{
		"benef-1": {ID: "benef-1", Nombre: "Juan", Apellido: "Pérez"},
	}}
	tx := &txRunnerFake{insumos: e.insumos, movs: e.movs, prestamos: e.prestamos}
	uc := inventario.NewPrestamoUseCase(tx, e.insumos, e.prestamos, beneficiarios)

	_, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La devolución reingresa exactamente la cantidad prestada y deja el stock
// como estaba antes del préstamo.
func TestPrestamo_DevolucionReingresaStock(t *testing.T) {
	e, uc := nuevoEntornoPrestamos(t, "5")

	prestamo, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	devuelto, err := uc.RegistrarDevolucion(context.Background(), prestamo.ID, "volvió ok", "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.PrestamoDEVUELTO, devuelto.Estado)
	require.NotNil(t, devuelto.FechaDevolucion)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(5)),
		"préstamo y devolución deben anularse entre sí")

	suma, _ := e.movs.SumByInsumo("cemento-1")
	assert.True(t, suma.Equal(e.stock(t)), "el libro debe seguir cuadrando")
}

// Una segunda devolución del mismo préstamo no reingresa stock dos veces:
// es un cambio de estado fuera de la tabla del préstamo.
func TestPrestamo_DevolucionDobleEsTransicionInvalida(t *testing.T) {
	e, uc := nuevoEntornoPrestamos(t, "5")

	prestamo, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	_, err = uc.RegistrarDevolucion(context.Background(), prestamo.ID, "", "user-1")
	require.NoError(t, err)

	_, err = uc.RegistrarDevolucion(context.Background(), prestamo.ID, "", "user-1")
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(5)),
		"la segunda devolución no debe tocar el stock")
}

// Una herramienta perdida no reingresa: el descuento del PRESTAMO queda firme.
func TestPrestamo_PerdidoNoReingresaStock(t *testing.T) {
	e, uc := nuevoEntornoPrestamos(t, "5")

	prestamo, err := uc.Crear(context.Background(), inventario.CrearPrestamoInput{
		InsumoID:       "cemento-1",
		BeneficiarioID: "benef-1",
		Cantidad:       decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	perdido, err := uc.MarcarPerdido(context.Background(), prestamo.ID, "no apareció")
	require.NoError(t, err)

	assert.Equal(t, entity.PrestamoPERDIDO, perdido.Estado)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(3)),
		"el stock debe quedar descontado")

	// Y un préstamo perdido tampoco admite devolución posterior.
	_, err = uc.RegistrarDevolucion(context.Background(), prestamo.ID, "", "user-1")
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
}
