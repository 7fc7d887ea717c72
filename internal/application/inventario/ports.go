package inventario

import (
	"context"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de stock:
// movimiento y stock derivado se escriben juntos o no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		insumoRepo repository.InsumoRepository,
		movRepo repository.MovimientoStockRepository,
		prestamoRepo repository.PrestamoRepository,
	) error) error
}
