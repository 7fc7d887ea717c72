package inventario

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// InsumoUseCase administra el catálogo de insumos. El stock nunca se edita
// por acá: solo cambia a través de movimientos.
type InsumoUseCase struct {
	insumoRepo    repository.InsumoRepository
	movRepo       repository.MovimientoStockRepository
	categoriaRepo repository.CategoriaInsumoRepository
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoStockRepository,
	categoriaRepo repository.CategoriaInsumoRepository,
) *InsumoUseCase {
	return &InsumoUseCase{insumoRepo: insumoRepo, movRepo: movRepo, categoriaRepo: categoriaRepo}
}

// Crear da de alta un insumo con stock cero.
func (uc *InsumoUseCase) Crear(req dto.CrearInsumoRequest) (*entity.Insumo, error) {
	if req.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	insumo := &entity.Insumo{
		ID:            uuid.New().String(),
		Nombre:        req.Nombre,
		CategoriaID:   req.CategoriaID,
		Codigo:        req.Codigo,
		Unidad:        req.Unidad,
		StockActual:   decimal.Zero,
		StockMinimo:   req.StockMinimo,
		EsHerramienta: req.EsHerramienta,
		Descripcion:   req.Descripcion,
		ActualizadoEn: time.Now(),
	}
	if err := uc.insumoRepo.Create(insumo); err != nil {
		return nil, err
	}
	return insumo, nil
}

// Actualizar modifica los datos del catálogo. StockActual se ignora siempre.
func (uc *InsumoUseCase) Actualizar(id string, req dto.ActualizarInsumoRequest) (*entity.Insumo, error) {
	insumo, err := uc.insumoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	if req.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	insumo.Nombre = req.Nombre
	insumo.CategoriaID = req.CategoriaID
	insumo.Codigo = req.Codigo
	insumo.Unidad = req.Unidad
	insumo.StockMinimo = req.StockMinimo
	insumo.EsHerramienta = req.EsHerramienta
	insumo.Descripcion = req.Descripcion
	insumo.ActualizadoEn = time.Now()
	if err := uc.insumoRepo.Update(insumo); err != nil {
		return nil, err
	}
	return insumo, nil
}

// Obtener devuelve un insumo por ID.
func (uc *InsumoUseCase) Obtener(id string) (*entity.Insumo, error) {
	insumo, err := uc.insumoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	return insumo, nil
}

// Listar lista insumos según filtro.
func (uc *InsumoUseCase) Listar(filtro repository.InsumoFiltro) ([]*entity.Insumo, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.insumoRepo.List(filtro)
}

// ListarMovimientos devuelve el historial de movimientos de un insumo.
func (uc *InsumoUseCase) ListarMovimientos(insumoID string, limit, offset int) ([]*entity.MovimientoStock, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	return uc.movRepo.ListByInsumo(insumoID, limit, offset)
}

// ConsistenciaStock compara el stock derivado con la suma del libro de
// movimientos. Si difieren hay un bug o una escritura por fuera del circuito.
type ConsistenciaStock struct {
	InsumoID       string
	StockActual    decimal.Decimal
	SumaMovimiento decimal.Decimal
	Consistente    bool
}

// VerificarConsistencia recalcula la suma de movimientos y la contrasta con
// el stock almacenado.
func (uc *InsumoUseCase) VerificarConsistencia(insumoID string) (*ConsistenciaStock, error) {
	insumo, err := uc.insumoRepo.GetByID(insumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}
	suma, err := uc.movRepo.SumByInsumo(insumoID)
	if err != nil {
		return nil, err
	}
	return &ConsistenciaStock{
		InsumoID:       insumoID,
		StockActual:    insumo.StockActual,
		SumaMovimiento: suma,
		Consistente:    insumo.StockActual.Equal(suma),
	}, nil
}

// CrearCategoria da de alta una categoría de insumos.
func (uc *InsumoUseCase) CrearCategoria(nombre string) (*entity.CategoriaInsumo, error) {
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.CategoriaInsumo{ID: uuid.New().String(), Nombre: nombre}
	if err := uc.categoriaRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ListarCategorias lista las categorías de insumos.
func (uc *InsumoUseCase) ListarCategorias() ([]*entity.CategoriaInsumo, error) {
	return uc.categoriaRepo.List()
}
