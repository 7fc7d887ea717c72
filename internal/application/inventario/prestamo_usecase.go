package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// PrestamoUseCase maneja el circuito del pañol: entrega de herramientas,
// devolución y pérdida. Cada préstamo descuenta stock al abrirse y lo
// reingresa al devolverse, siempre en la misma transacción que el estado
// del préstamo.
type PrestamoUseCase struct {
	txRunner         TxRunner
	insumoRepo       repository.InsumoRepository
	prestamoRepo     repository.PrestamoRepository
	beneficiarioRepo repository.BeneficiarioRepository
}

// NewPrestamoUseCase construye el caso de uso.
func NewPrestamoUseCase(
	txRunner TxRunner,
	insumoRepo repository.InsumoRepository,
	prestamoRepo repository.PrestamoRepository,
	beneficiarioRepo repository.BeneficiarioRepository,
) *PrestamoUseCase {
	return &PrestamoUseCase{
		txRunner:         txRunner,
		insumoRepo:       insumoRepo,
		prestamoRepo:     prestamoRepo,
		beneficiarioRepo: beneficiarioRepo,
	}
}

// CrearPrestamoInput entrada para abrir un préstamo.
type CrearPrestamoInput struct {
	InsumoID       string
	BeneficiarioID string
	Cantidad       decimal.Decimal
	Observacion    string
	UsuarioID      string
}

// Crear abre un préstamo: valida que el insumo sea herramienta y que el
// beneficiario exista, y en una sola transacción crea el préstamo PENDIENTE
// y registra el movimiento PRESTAMO que descuenta el stock.
func (uc *PrestamoUseCase) Crear(ctx context.Context, input CrearPrestamoInput) (*entity.Prestamo, error) {
	if input.InsumoID == "" || input.BeneficiarioID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	insumo, err := uc.insumoRepo.GetByID(input.InsumoID)
	if err != nil || insumo == nil {
		return nil, domain.ErrNotFound
	}
	if !insumo.EsHerramienta {
		return nil, domain.ErrInvalidInput
	}
	beneficiario, err := uc.beneficiarioRepo.GetByID(input.BeneficiarioID)
	if err != nil || beneficiario == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	prestamo := &entity.Prestamo{
		ID:             uuid.New().String(),
		InsumoID:       input.InsumoID,
		BeneficiarioID: input.BeneficiarioID,
		Cantidad:       input.Cantidad,
		FechaSalida:    now,
		Estado:         entity.PrestamoPENDIENTE,
		ObsSalida:      input.Observacion,
		CreadoPorID:    input.UsuarioID,
	}

	err = uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		movRepo repository.MovimientoStockRepository,
		prestamoRepo repository.PrestamoRepository,
	) error {
		if err := prestamoRepo.Create(prestamo); err != nil {
			return err
		}
		_, err := registrarEnTx(insumoRepo, movRepo, MovimientoStockInput{
			InsumoID:   input.InsumoID,
			Tipo:       entity.MovStockPRESTAMO,
			Cantidad:   input.Cantidad,
			Referencia: "Préstamo a " + beneficiario.NombreCompleto(),
			UsuarioID:  input.UsuarioID,
		}, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return prestamo, nil
}

// RegistrarDevolucion cierra un préstamo pendiente: marca DEVUELTO y registra
// el movimiento DEVOLUCION por la misma cantidad, en una sola transacción.
// Una segunda devolución del mismo préstamo devuelve ErrTransicionInvalida.
func (uc *PrestamoUseCase) RegistrarDevolucion(ctx context.Context, prestamoID, observacion, usuarioID string) (*entity.Prestamo, error) {
	var prestamo *entity.Prestamo
	err := uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		movRepo repository.MovimientoStockRepository,
		prestamoRepo repository.PrestamoRepository,
	) error {
		var err error
		prestamo, err = prestamoRepo.GetForUpdate(prestamoID)
		if err != nil {
			return err
		}
		if prestamo == nil {
			return domain.ErrNotFound
		}
		if prestamo.Estado != entity.PrestamoPENDIENTE {
			return domain.ErrTransicionInvalida
		}

		now := time.Now()
		prestamo.Estado = entity.PrestamoDEVUELTO
		prestamo.FechaDevolucion = &now
		prestamo.ObsDevolucion = observacion
		if err := prestamoRepo.Update(prestamo); err != nil {
			return err
		}
		_, err = registrarEnTx(insumoRepo, movRepo, MovimientoStockInput{
			InsumoID:   prestamo.InsumoID,
			Tipo:       entity.MovStockDEVOLUCION,
			Cantidad:   prestamo.Cantidad,
			Referencia: "Devolución de préstamo",
			UsuarioID:  usuarioID,
		}, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return prestamo, nil
}

// MarcarPerdido cierra un préstamo pendiente sin reingresar stock: la
// herramienta no vuelve, el descuento del movimiento PRESTAMO queda firme.
func (uc *PrestamoUseCase) MarcarPerdido(ctx context.Context, prestamoID, observacion string) (*entity.Prestamo, error) {
	var prestamo *entity.Prestamo
	err := uc.txRunner.Run(ctx, func(
		_ repository.InsumoRepository,
		_ repository.MovimientoStockRepository,
		prestamoRepo repository.PrestamoRepository,
	) error {
		var err error
		prestamo, err = prestamoRepo.GetForUpdate(prestamoID)
		if err != nil {
			return err
		}
		if prestamo == nil {
			return domain.ErrNotFound
		}
		if prestamo.Estado != entity.PrestamoPENDIENTE {
			return domain.ErrTransicionInvalida
		}
		now := time.Now()
		prestamo.Estado = entity.PrestamoPERDIDO
		prestamo.FechaDevolucion = &now
		prestamo.ObsDevolucion = observacion
		return prestamoRepo.Update(prestamo)
	})
	if err != nil {
		return nil, err
	}
	return prestamo, nil
}

// Listar lista préstamos según filtro.
func (uc *PrestamoUseCase) Listar(filtro repository.PrestamoFiltro) ([]*entity.Prestamo, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.prestamoRepo.List(filtro)
}

// Obtener devuelve un préstamo por ID.
func (uc *PrestamoUseCase) Obtener(prestamoID string) (*entity.Prestamo, error) {
	prestamo, err := uc.prestamoRepo.GetByID(prestamoID)
	if err != nil {
		return nil, err
	}
	if prestamo == nil {
		return nil, domain.ErrNotFound
	}
	return prestamo, nil
}
