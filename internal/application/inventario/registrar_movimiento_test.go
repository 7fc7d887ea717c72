package inventario_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Sin transacciones reales: el orden de escritura del caso
// de uso (guarda primero, escritura después) es justamente lo que se verifica.
// ──────────────────────────────────────────────────────────────────────────────

type insumoRepoFake struct {
	insumos map[string]*entity.Insumo
}

func newInsumoRepoFake() *insumoRepoFake {
	return &insumoRepoFake{insumos: map[string]*entity.Insumo{}}
}

func (f *insumoRepoFake) Create(i *entity.Insumo) error { f.insumos[i.ID] = i; return nil }
func (f *insumoRepoFake) GetByID(id string) (*entity.Insumo, error) {
	return f.insumos[id], nil
}
func (f *insumoRepoFake) GetForUpdate(id string) (*entity.Insumo, error) {
	return f.insumos[id], nil
}
func (f *insumoRepoFake) Update(i *entity.Insumo) error { f.insumos[i.ID] = i; return nil }
func (f *insumoRepoFake) UpdateStock(id string, stock decimal.Decimal, actualizadoEn time.Time) error {
	f.insumos[id].StockActual = stock
	f.insumos[id].ActualizadoEn = actualizadoEn
	return nil
}
func (f *insumoRepoFake) List(repository.InsumoFiltro) ([]*entity.Insumo, error) {
	return nil, nil
}

type movStockRepoFake struct {
	movimientos []*entity.MovimientoStock
}

func (f *movStockRepoFake) Create(m *entity.MovimientoStock) error {
	f.movimientos = append(f.movimientos, m)
	return nil
}

func (f *movStockRepoFake) ListByInsumo(insumoID string, limit, offset int) ([]*entity.MovimientoStock, error) {
	var out []*entity.MovimientoStock
	for _, m := range f.movimientos {
		if m.InsumoID == insumoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *movStockRepoFake) SumByInsumo(insumoID string) (decimal.Decimal, error) {
	suma := decimal.Zero
	for _, m := range f.movimientos {
		if m.InsumoID == insumoID {
			suma = suma.Add(m.Cantidad)
		}
	}
	return suma, nil
}

type prestamoRepoFake struct {
	prestamos map[string]*entity.Prestamo
}

func newPrestamoRepoFake() *prestamoRepoFake {
	return &prestamoRepoFake{prestamos: map[string]*entity.Prestamo{}}
}

func (f *prestamoRepoFake) Create(p *entity.Prestamo) error { f.prestamos[p.ID] = p; return nil }
func (f *prestamoRepoFake) GetByID(id string) (*entity.Prestamo, error) {
	return f.prestamos[id], nil
}
func (f *prestamoRepoFake) GetForUpdate(id string) (*entity.Prestamo, error) {
	return f.prestamos[id], nil
}
func (f *prestamoRepoFake) Update(p *entity.Prestamo) error { f.prestamos[p.ID] = p; return nil }
func (f *prestamoRepoFake) List(repository.PrestamoFiltro) ([]*entity.Prestamo, error) {
	return nil, nil
}

type beneficiarioRepoFake struct {
	beneficiarios map[string]*entity.Beneficiario
}

func (f *beneficiarioRepoFake) Create(b *entity.Beneficiario) error { return nil }
func (f *beneficiarioRepoFake) GetByID(id string) (*entity.Beneficiario, error) {
	return f.beneficiarios[id], nil
}
func (f *beneficiarioRepoFake) GetByDNI(string) (*entity.Beneficiario, error) { return nil, nil }
func (f *beneficiarioRepoFake) Update(*entity.Beneficiario) error             { return nil }
func (f *beneficiarioRepoFake) List(repository.BeneficiarioFiltro) ([]*entity.Beneficiario, error) {
	return nil, nil
}
func (f *beneficiarioRepoFake) Suggest(string, int) ([]*entity.Beneficiario, error) {
	return nil, nil
}

// txRunnerFake pasa los fakes directamente, sin transacción real.
type txRunnerFake struct {
	insumos   *insumoRepoFake
	movs      *movStockRepoFake
	prestamos *prestamoRepoFake
}

func (f *txRunnerFake) Run(ctx context.Context, fn func(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoStockRepository,
	prestamoRepo repository.PrestamoRepository,
) error) error {
	return fn(f.insumos, f.movs, f.prestamos)
}

// entorno arma un insumo con stock inicial y los casos de uso atados a fakes.
type entorno struct {
	insumos   *insumoRepoFake
	movs      *movStockRepoFake
	prestamos *prestamoRepoFake
	registrar *inventario.RegistrarMovimientoUseCase
}

func nuevoEntorno(t *testing.T, stockInicial string, esHerramienta bool) *entorno {
	t.Helper()
	e := &entorno{
		insumos:   newInsumoRepoFake(),
		movs:      &movStockRepoFake{},
		prestamos: newPrestamoRepoFake(),
	}
	tx := &txRunnerFake{insumos: e.insumos, movs: e.movs, prestamos: e.prestamos}
	e.registrar = inventario.NewRegistrarMovimientoUseCase(tx, e.insumos)

	stock, err := decimal.NewFromString(stockInicial)
	require.NoError(t, err)
	e.insumos.insumos["cemento-1"] = &entity.Insumo{
		ID:            "cemento-1",
		Nombre:        "Cemento x 50kg",
		Unidad:        entity.UnidadBolsa,
		StockActual:   decimal.Zero,
		EsHerramienta: esHerramienta,
	}
	if stock.GreaterThan(decimal.Zero) {
		_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
			InsumoID:   "cemento-1",
			Tipo:       entity.MovStockENTRADA,
			Cantidad:   stock,
			Referencia: "Carga inicial",
		})
		require.NoError(t, err)
	}
	return e
}

func (e *entorno) stock(t *testing.T) decimal.Decimal {
	t.Helper()
	return e.insumos.insumos["cemento-1"].StockActual
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de no-negatividad
// ──────────────────────────────────────────────────────────────────────────────

// Una salida mayor al stock disponible se rechaza completa: ni movimiento en
// el libro ni cambio en el stock derivado.
func TestRegistrar_SalidaMayorAlStockSeRechaza(t *testing.T) {
	e := nuevoEntorno(t, "15", false)

	_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockSALIDA,
		Cantidad: decimal.NewFromInt(20),
	})

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.True(t, e.stock(t).Equal(decimal.NewFromInt(15)),
		"el stock no debe cambiar cuando la salida se rechaza")
	assert.Len(t, e.movs.movimientos, 1,
		"el libro solo debe tener la carga inicial")
}

func TestRegistrar_SalidaExactaDejaStockCero(t *testing.T) {
	e := nuevoEntorno(t, "15", false)

	mov, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockSALIDA,
		Cantidad: decimal.NewFromInt(15),
	})

	require.NoError(t, err)
	assert.True(t, mov.Cantidad.Equal(decimal.NewFromInt(-15)),
		"la cantidad se guarda con signo aplicado")
	assert.True(t, e.stock(t).IsZero())
}

func TestRegistrar_AjusteNegativoRespetaLaGuarda(t *testing.T) {
	e := nuevoEntorno(t, "10", false)

	_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockAJUSTE,
		Cantidad: decimal.NewFromInt(-12),
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	_, err = e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockAJUSTE,
		Cantidad: decimal.NewFromInt(-10),
	})
	require.NoError(t, err)
	assert.True(t, e.stock(t).IsZero())
}

func TestRegistrar_AjusteCeroEsInvalido(t *testing.T) {
	e := nuevoEntorno(t, "10", false)

	_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockAJUSTE,
		Cantidad: decimal.Zero,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_CantidadNegativaEnSalidaEsInvalida(t *testing.T) {
	e := nuevoEntorno(t, "10", false)

	_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "cemento-1",
		Tipo:     entity.MovStockSALIDA,
		Cantidad: decimal.NewFromInt(-5),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// PRESTAMO y DEVOLUCION quedan reservados al circuito de préstamos: el
// registro directo los rechaza aunque la cantidad sea válida.
func TestRegistrar_TiposDePrestamoReservados(t *testing.T) {
	e := nuevoEntorno(t, "10", true)

	for _, tipo := range []string{entity.MovStockPRESTAMO, entity.MovStockDEVOLUCION} {
		_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
			InsumoID: "cemento-1",
			Tipo:     tipo,
			Cantidad: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tipo)
	}
}

func TestRegistrar_InsumoInexistente(t *testing.T) {
	e := nuevoEntorno(t, "0", false)

	_, err := e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
		InsumoID: "no-existe",
		Tipo:     entity.MovStockENTRADA,
		Cantidad: decimal.NewFromInt(1),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante stock derivado == suma del libro
// ──────────────────────────────────────────────────────────────────────────────

// Tras una secuencia de entradas, salidas y ajustes, el stock derivado debe
// coincidir exactamente con la suma con signo del libro de movimientos.
func TestRegistrar_StockCoincideConSumaDelLibro(t *testing.T) {
	e := nuevoEntorno(t, "0", false)

	pasos := []struct {
		tipo     string
		cantidad string
	}{
		{entity.MovStockENTRADA, "100"},
		{entity.MovStockSALIDA, "30.5"},
		{entity.MovStockAJUSTE, "-2"},
		{entity.MovStockENTRADA, "12.25"},
		{entity.MovStockSALIDA, "40"},
	}
	for _, p := range pasos {
		cantidad, err := decimal.NewFromString(p.cantidad)
		require.NoError(t, err)
		_, err = e.registrar.Registrar(context.Background(), inventario.MovimientoStockInput{
			InsumoID: "cemento-1",
			Tipo:     p.tipo,
			Cantidad: cantidad,
		})
		require.NoError(t, err, "%s %s", p.tipo, p.cantidad)
	}

	suma, err := e.movs.SumByInsumo("cemento-1")
	require.NoError(t, err)
	assert.True(t, e.stock(t).Equal(suma),
		"stock derivado %s != suma del libro %s", e.stock(t), suma)
	assert.True(t, e.stock(t).Equal(decimal.RequireFromString("39.75")))
}
