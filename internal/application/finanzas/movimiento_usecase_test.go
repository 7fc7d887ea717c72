package finanzas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

type beneficiarioRepoFake struct {
	beneficiarios map[string]*entity.Beneficiario
}

func (f *beneficiarioRepoFake) Create(*entity.Beneficiario) error { return nil }
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

func nuevoMovimientoUC() (*finanzas.MovimientoUseCase, *movRepoFake) {
	movs := &movRepoFake{}
	beneficiarios := &beneficiarioRepoFake{beneficiarios: map[string]*entity.Beneficiario{
		"benef-1": {ID: "benef-1", Nombre: "Ana", Apellido: "Gómez", DNI: "30111222"},
	}}
	proveedores := &proveedorRepoFake{proveedores: map[string]*entity.Proveedor{}}
	uc := finanzas.NewMovimientoUseCase(movs, nil, proveedores, beneficiarios, finanzas.CapacidadesPorRol{})
	return uc, movs
}

// Un operador carga movimientos pero no puede dejarlos aprobados: aunque el
// request pida APROBADO, entra como BORRADOR.
func TestMovimiento_OperadorNoAutoAprueba(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	mov, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:        entity.MovGASTO,
		Monto:       decimal.RequireFromString("1500"),
		Descripcion: "Compra de repuestos",
		Estado:      entity.MovAPROBADO,
	}, "op-1", domain.RolOperadorFinanzas)

	require.NoError(t, err)
	assert.Equal(t, entity.MovBORRADOR, mov.Estado)
}

func TestMovimiento_StaffCreaAprobado(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	mov, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:        entity.MovINGRESO,
		Monto:       decimal.RequireFromString("80000"),
		Descripcion: "Coparticipación",
		Estado:      entity.MovAPROBADO,
	}, "staff-1", domain.RolStaffFinanzas)

	require.NoError(t, err)
	assert.Equal(t, entity.MovAPROBADO, mov.Estado)
}

func TestMovimiento_MontoCeroEsInvalido(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	_, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:        entity.MovGASTO,
		Descripcion: "sin monto",
	}, "staff-1", domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimiento_RolConsultaNoCarga(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	_, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:        entity.MovGASTO,
		Monto:       decimal.RequireFromString("10"),
		Descripcion: "intento",
	}, "consulta-1", domain.RolConsultaPolitica)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

// Al vincular un beneficiario, el movimiento congela nombre y DNI como texto:
// el padrón puede cambiar después sin afectar lo asentado.
func TestMovimiento_CongelaDatosDelBeneficiario(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	mov, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:           entity.MovGASTO,
		Monto:          decimal.RequireFromString("5000"),
		Descripcion:    "Ayuda económica",
		BeneficiarioID: "benef-1",
	}, "staff-1", domain.RolStaffFinanzas)

	require.NoError(t, err)
	assert.Equal(t, "Gómez, Ana", mov.BeneficiarioNombre)
	assert.Equal(t, "30111222", mov.BeneficiarioDNI)
}

func TestMovimiento_AprobarBorrador(t *testing.T) {
	uc, _ := nuevoMovimientoUC()

	mov, err := uc.Crear(dto.CrearMovimientoRequest{
		Tipo:        entity.MovGASTO,
		Monto:       decimal.RequireFromString("200"),
		Descripcion: "Librería",
	}, "op-1", domain.RolOperadorFinanzas)
	require.NoError(t, err)
	require.Equal(t, entity.MovBORRADOR, mov.Estado)

	// El operador no aprueba
	_, err = uc.CambiarEstado(mov.ID, entity.MovAPROBADO, domain.RolOperadorFinanzas)
	require.ErrorIs(t, err, domain.ErrForbidden)

	aprobado, err := uc.CambiarEstado(mov.ID, entity.MovAPROBADO, domain.RolStaffFinanzas)
	require.NoError(t, err)
	assert.Equal(t, entity.MovAPROBADO, aprobado.Estado)

	// Un movimiento ya resuelto no se vuelve a tocar
	_, err = uc.CambiarEstado(mov.ID, entity.MovRECHAZADO, domain.RolStaffFinanzas)
	require.ErrorIs(t, err, domain.ErrConflict)
}
