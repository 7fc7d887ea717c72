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

// RegistrarMovimientoUseCase registra movimientos de stock de forma
// transaccional (ENTRADA, SALIDA, AJUSTE) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. PRESTAMO y DEVOLUCION no se
// registran por acá: los genera el circuito de préstamos.
type RegistrarMovimientoUseCase struct {
	txRunner   TxRunner
	insumoRepo repository.InsumoRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner, insumoRepo repository.InsumoRepository) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner, insumoRepo: insumoRepo}
}

// MovimientoStockInput entrada para registrar un movimiento de stock.
// Cantidad positiva para ENTRADA/SALIDA; en AJUSTE el signo es el delta.
type MovimientoStockInput struct {
	InsumoID   string
	Tipo       string
	Cantidad   decimal.Decimal
	Referencia string
	UsuarioID  string
}

// Registrar inicia una transacción, bloquea la fila del insumo, verifica que
// el stock resultante no quede negativo y escribe movimiento + stock derivado.
// Si la guarda falla no se escribe nada y devuelve ErrStockInsuficiente.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, input MovimientoStockInput) (*entity.MovimientoStock, error) {
	switch input.Tipo {
	case entity.MovStockENTRADA, entity.MovStockSALIDA:
		if !input.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovStockAJUSTE:
		if input.Cantidad.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovStockPRESTAMO, entity.MovStockDEVOLUCION:
		// Reservados al circuito de préstamos, que garantiza el par
		// salida/reingreso por la misma cantidad.
		return nil, domain.ErrInvalidInput
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.InsumoID == "" {
		return nil, domain.ErrInvalidInput
	}

	var mov *entity.MovimientoStock
	err := uc.txRunner.Run(ctx, func(
		insumoRepo repository.InsumoRepository,
		movRepo repository.MovimientoStockRepository,
		_ repository.PrestamoRepository,
	) error {
		var err error
		mov, err = registrarEnTx(insumoRepo, movRepo, input, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// registrarEnTx aplica un movimiento usando repositorios ya atados a una
// transacción: bloquea la fila del insumo, valida la guarda de no-negatividad
// y escribe el movimiento junto con el stock derivado. Lo comparten el
// registro directo y el circuito de préstamos (misma tx que el préstamo).
func registrarEnTx(
	insumoRepo repository.InsumoRepository,
	movRepo repository.MovimientoStockRepository,
	input MovimientoStockInput,
	now time.Time,
) (*entity.MovimientoStock, error) {
	insumo, err := insumoRepo.GetForUpdate(input.InsumoID)
	if err != nil {
		return nil, err
	}
	if insumo == nil {
		return nil, domain.ErrNotFound
	}

	delta := entity.DeltaStock(input.Tipo, input.Cantidad)
	nuevoStock := insumo.StockActual.Add(delta)
	if nuevoStock.IsNegative() {
		return nil, domain.ErrStockInsuficiente
	}

	mov := &entity.MovimientoStock{
		ID:         uuid.New().String(),
		InsumoID:   input.InsumoID,
		Tipo:       input.Tipo,
		Cantidad:   delta,
		Fecha:      now,
		UsuarioID:  input.UsuarioID,
		Referencia: input.Referencia,
		CreadoEn:   now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := insumoRepo.UpdateStock(input.InsumoID, nuevoStock, now); err != nil {
		return nil, err
	}
	return mov, nil
}
