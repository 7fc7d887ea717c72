package finanzas_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type ordenRepoFake struct {
	ordenes map[string]*entity.Orden
	lineas  map[string][]*entity.OrdenLinea
}

func newOrdenRepoFake() *ordenRepoFake {
	return &ordenRepoFake{
		ordenes: map[string]*entity.Orden{},
		lineas:  map[string][]*entity.OrdenLinea{},
	}
}

func (f *ordenRepoFake) Create(o *entity.Orden, lineas []*entity.OrdenLinea) error {
	f.ordenes[o.ID] = o
	f.lineas[o.ID] = lineas
	return nil
}
func (f *ordenRepoFake) GetByID(id string) (*entity.Orden, error)      { return f.ordenes[id], nil }
func (f *ordenRepoFake) GetForUpdate(id string) (*entity.Orden, error) { return f.ordenes[id], nil }
func (f *ordenRepoFake) Update(o *entity.Orden) error                  { f.ordenes[o.ID] = o; return nil }
func (f *ordenRepoFake) UpdateEstado(id, estado, actualizadoPorID string) error {
	f.ordenes[id].Estado = estado
	return nil
}
func (f *ordenRepoFake) List(repository.OrdenFiltro) ([]*entity.Orden, error) { return nil, nil }
func (f *ordenRepoFake) ListLineas(ordenID string) ([]*entity.OrdenLinea, error) {
	return f.lineas[ordenID], nil
}
func (f *ordenRepoFake) ReplaceLineas(ordenID string, lineas []*entity.OrdenLinea) error {
	f.lineas[ordenID] = lineas
	return nil
}
func (f *ordenRepoFake) MaxNumeroConPrefijo(prefijo string) (int, error) {
	max := 0
	for _, o := range f.ordenes {
		if !strings.HasPrefix(o.Numero, prefijo+"-") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(o.Numero, prefijo+"-"))
		if err == nil && n > max {
			max = n
		}
	}
	return max, nil
}

type movRepoFake struct {
	movimientos []*entity.Movimiento
}

func (f *movRepoFake) Create(m *entity.Movimiento) error {
	f.movimientos = append(f.movimientos, m)
	return nil
}
func (f *movRepoFake) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range f.movimientos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *movRepoFake) UpdateEstado(id, estado string) error {
	for _, m := range f.movimientos {
		if m.ID == id {
			m.Estado = estado
		}
	}
	return nil
}
func (f *movRepoFake) List(repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	return nil, nil
}
func (f *movRepoFake) ExistsByOrden(ordenID string) (bool, error) {
	for _, m := range f.movimientos {
		if m.OrdenID == ordenID {
			return true, nil
		}
	}
	return false, nil
}
func (f *movRepoFake) Resumen(desde, hasta time.Time) (*repository.ResumenMensual, error) {
	return &repository.ResumenMensual{}, nil
}
func (f *movRepoFake) Ultimos(int) ([]*entity.Movimiento, error) { return nil, nil }

type proveedorRepoFake struct {
	proveedores map[string]*entity.Proveedor
}

func (f *proveedorRepoFake) Create(*entity.Proveedor) error { return nil }
func (f *proveedorRepoFake) GetByID(id string) (*entity.Proveedor, error) {
	return f.proveedores[id], nil
}
func (f *proveedorRepoFake) GetByCUIT(string) (*entity.Proveedor, error)  { return nil, nil }
func (f *proveedorRepoFake) Update(*entity.Proveedor) error               { return nil }
func (f *proveedorRepoFake) List(string, int, int) ([]*entity.Proveedor, error) {
	return nil, nil
}
func (f *proveedorRepoFake) Suggest(string, int) ([]*entity.Proveedor, error) { return nil, nil }

type txRunnerFake struct {
	ordenes *ordenRepoFake
	movs    *movRepoFake
}

func (f *txRunnerFake) RunFinanzas(ctx context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	return fn(f.ordenes, f.movs)
}

type entornoOrdenes struct {
	ordenes *ordenRepoFake
	movs    *movRepoFake
	uc      *finanzas.OrdenUseCase
}

func nuevoEntornoOrdenes(t *testing.T) *entornoOrdenes {
	t.Helper()
	e := &entornoOrdenes{ordenes: newOrdenRepoFake(), movs: &movRepoFake{}}
	tx := &txRunnerFake{ordenes: e.ordenes, movs: e.movs}
	proveedores := &proveedorRepoFake{proveedores: map[string]*entity.Proveedor{}}
	e.uc = finanzas.NewOrdenUseCase(tx, e.ordenes, proveedores, finanzas.CapacidadesPorRol{})
	return e
}

func lineaValida(monto string) dto.OrdenLineaRequest {
	return dto.OrdenLineaRequest{
		CategoriaID: "cat-ayudas",
		Descripcion: "Ayuda económica",
		Monto:       decimal.RequireFromString(monto),
	}
}

func (e *entornoOrdenes) crearOrden(t *testing.T, rubro string, lineas ...dto.OrdenLineaRequest) *entity.Orden {
	t.Helper()
	orden, err := e.uc.Crear(context.Background(), dto.CrearOrdenRequest{
		Rubro:  rubro,
		Lineas: lineas,
	}, "operador-1")
	require.NoError(t, err)
	return orden
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración y alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_NumeraPorRubro(t *testing.T) {
	e := nuevoEntornoOrdenes(t)

	primera := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))
	segunda := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("200"))
	combustible := e.crearOrden(t, entity.RubroCombustible, lineaValida("300"))

	assert.Equal(t, "AS-001", primera.Numero)
	assert.Equal(t, "AS-002", segunda.Numero)
	assert.Equal(t, "CB-001", combustible.Numero,
		"cada rubro lleva su propia numeración")
	assert.Equal(t, entity.OrdenBORRADOR, primera.Estado)
}

func TestCrear_RubroDesconocidoEsInvalido(t *testing.T) {
	e := nuevoEntornoOrdenes(t)

	_, err := e.uc.Crear(context.Background(), dto.CrearOrdenRequest{Rubro: "ZZ"}, "operador-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados y movimiento de cierre
// ──────────────────────────────────────────────────────────────────────────────

// El circuito completo: BORRADOR -> AUTORIZADA -> CERRADA. El cierre asienta
// exactamente un movimiento GASTO aprobado por la suma de las líneas.
func TestCambiarEstado_CierreGeneraUnSoloMovimiento(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100.50"), lineaValida("49.50"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)

	cerrada, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionCerrar, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenCERRADA, cerrada.Estado)

	require.Len(t, e.movs.movimientos, 1, "el cierre genera exactamente un movimiento")
	mov := e.movs.movimientos[0]
	assert.Equal(t, entity.MovGASTO, mov.Tipo)
	assert.Equal(t, entity.MovAPROBADO, mov.Estado)
	assert.Equal(t, orden.ID, mov.OrdenID)
	assert.True(t, mov.Monto.Equal(decimal.RequireFromString("150")),
		"el monto es la suma de las líneas")
	assert.Equal(t, "cat-ayudas", mov.CategoriaID)
}

func TestCambiarEstado_CierreDobleNoDuplicaMovimiento(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)
	_, err = e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionCerrar, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)

	_, err = e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionCerrar, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Len(t, e.movs.movimientos, 1, "el segundo cierre no debe asentar nada")
}

func TestCambiarEstado_BorradorNoSeCierraDirecto(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionCerrar, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
	assert.Empty(t, e.movs.movimientos)
	assert.Equal(t, entity.OrdenBORRADOR, e.ordenes.ordenes[orden.ID].Estado)
}

func TestCambiarEstado_SinLineasNoAvanza(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales) // sin líneas

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
}

func TestCambiarEstado_LineaSinCategoriaNoAvanza(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, dto.OrdenLineaRequest{
		Descripcion: "sin imputar",
		Monto:       decimal.RequireFromString("100"),
	})

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
}

func TestCambiarEstado_TotalCeroNoAvanza(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("0"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrTransicionInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_OperadorNoAutoriza(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "op-1", domain.RolOperadorFinanzas)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.OrdenBORRADOR, e.ordenes.ordenes[orden.ID].Estado)
}

func TestCambiarEstado_ReabrirSoloAdministracion(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAnular, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)

	_, err = e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionReabrir, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrForbidden, "el staff no reabre anuladas")

	reabierta, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionReabrir, "admin-1", domain.RolAdminSistema)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenBORRADOR, reabierta.Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizar_SoloBorradores(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.CambiarEstado(context.Background(), orden.ID, entity.AccionAutorizar, "staff-1", domain.RolStaffFinanzas)
	require.NoError(t, err)

	_, err = e.uc.Actualizar(context.Background(), orden.ID, dto.ActualizarOrdenRequest{
		Observaciones: "intento de edición",
		Lineas:        []dto.OrdenLineaRequest{lineaValida("999")},
	}, domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrConflict, "lo autorizado no se edita, se anula")
}

func TestActualizar_ReemplazaLineasEnBorrador(t *testing.T) {
	e := nuevoEntornoOrdenes(t)
	orden := e.crearOrden(t, entity.RubroAyudasSociales, lineaValida("100"))

	_, err := e.uc.Actualizar(context.Background(), orden.ID, dto.ActualizarOrdenRequest{
		Lineas: []dto.OrdenLineaRequest{lineaValida("40"), lineaValida("60.25")},
	}, domain.RolOperadorFinanzas)
	require.NoError(t, err)

	lineas, err := e.ordenes.ListLineas(orden.ID)
	require.NoError(t, err)
	require.Len(t, lineas, 2)
	assert.True(t, entity.TotalLineas(lineas).Equal(decimal.RequireFromString("100.25")))
}
