package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// MovimientoStockRepository puerto del libro de movimientos de stock.
// El log es append-only: no hay Update ni Delete.
type MovimientoStockRepository interface {
	Create(mov *entity.MovimientoStock) error
	ListByInsumo(insumoID string, limit, offset int) ([]*entity.MovimientoStock, error)
	// SumByInsumo devuelve la suma con signo de todos los movimientos del
	// insumo; debe coincidir siempre con Insumo.StockActual.
	SumByInsumo(insumoID string) (decimal.Decimal, error)
}
