package finanzas

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// MovimientoUseCase carga y aprobación de movimientos de caja. Los borradores
// no cuentan en saldos hasta que el staff los aprueba.
type MovimientoUseCase struct {
	movRepo          repository.MovimientoRepository
	categoriaRepo    repository.CategoriaRepository
	proveedorRepo    repository.ProveedorRepository
	beneficiarioRepo repository.BeneficiarioRepository
	capacidades      Capacidades
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	movRepo repository.MovimientoRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
	beneficiarioRepo repository.BeneficiarioRepository,
	capacidades Capacidades,
) *MovimientoUseCase {
	return &MovimientoUseCase{
		movRepo:          movRepo,
		categoriaRepo:    categoriaRepo,
		proveedorRepo:    proveedorRepo,
		beneficiarioRepo: beneficiarioRepo,
		capacidades:      capacidades,
	}
}

// Crear carga un movimiento manual. Si el request pide estado APROBADO y el
// rol no alcanza, entra igual pero como BORRADOR.
func (uc *MovimientoUseCase) Crear(req dto.CrearMovimientoRequest, usuarioID, rol string) (*entity.Movimiento, error) {
	if !uc.capacidades.PuedeEditarOrden(rol) {
		return nil, domain.ErrForbidden
	}
	if !req.Monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	estado := entity.MovBORRADOR
	if req.Estado == entity.MovAPROBADO && uc.capacidades.PuedeAprobarMovimiento(rol) {
		estado = entity.MovAPROBADO
	}
	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:             uuid.New().String(),
		Tipo:           req.Tipo,
		FechaOperacion: fecha,
		Monto:          req.Monto,
		CategoriaID:    req.CategoriaID,
		Descripcion:    req.Descripcion,
		VehiculoID:     req.VehiculoID,
		Litros:         req.Litros,
		Estado:         estado,
		CreadoPorID:    usuarioID,
		CreadoEn:       now,
	}
	if req.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(req.ProveedorID)
		if err != nil || proveedor == nil {
			return nil, domain.ErrNotFound
		}
		mov.ProveedorID = proveedor.ID
		mov.ProveedorNombre = proveedor.Nombre
		mov.ProveedorCUIT = proveedor.CUIT
	}
	if req.BeneficiarioID != "" {
		beneficiario, err := uc.beneficiarioRepo.GetByID(req.BeneficiarioID)
		if err != nil || beneficiario == nil {
			return nil, domain.ErrNotFound
		}
		mov.BeneficiarioID = beneficiario.ID
		mov.BeneficiarioNombre = beneficiario.NombreCompleto()
		mov.BeneficiarioDNI = beneficiario.DNI
	}

	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// CambiarEstado aprueba o rechaza un borrador. Los movimientos generados por
// cierre de orden nacen aprobados y no pasan por acá.
func (uc *MovimientoUseCase) CambiarEstado(id, estado, rol string) (*entity.Movimiento, error) {
	if !uc.capacidades.PuedeAprobarMovimiento(rol) {
		return nil, domain.ErrForbidden
	}
	if estado != entity.MovAPROBADO && estado != entity.MovRECHAZADO {
		return nil, domain.ErrInvalidInput
	}

	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.Estado != entity.MovBORRADOR {
		return nil, domain.ErrConflict
	}
	if err := uc.movRepo.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	mov.Estado = estado
	return mov, nil
}

// Obtener devuelve un movimiento por ID.
func (uc *MovimientoUseCase) Obtener(id string) (*entity.Movimiento, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// Listar lista movimientos según filtro. Por defecto solo aprobados.
func (uc *MovimientoUseCase) Listar(filtro repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.movRepo.List(filtro)
}
