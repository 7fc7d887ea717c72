package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.MovimientoStockRepository = (*MovimientoStockRepo)(nil)

// MovimientoStockRepo implementación del libro de movimientos de stock sobre
// PostgreSQL. Solo inserta y lee: el libro es inmutable.
type MovimientoStockRepo struct {
	q Querier
}

// NewMovimientoStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoStockRepository(q Querier) *MovimientoStockRepo {
	return &MovimientoStockRepo{q: q}
}

// Create inserta un movimiento en el libro.
func (r *MovimientoStockRepo) Create(mov *entity.MovimientoStock) error {
	query := `
		INSERT INTO movimientos_stock (id, insumo_id, tipo, cantidad, fecha, usuario_id, referencia, creado_en)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.InsumoID, mov.Tipo, mov.Cantidad, mov.Fecha,
		mov.UsuarioID, mov.Referencia, mov.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento stock: %w", err)
	}
	return nil
}

// ListByInsumo devuelve el historial del insumo, más reciente primero.
func (r *MovimientoStockRepo) ListByInsumo(insumoID string, limit, offset int) ([]*entity.MovimientoStock, error) {
	query := `
		SELECT id, insumo_id, tipo, cantidad, fecha, COALESCE(usuario_id::text, ''), referencia, creado_en
		FROM movimientos_stock WHERE insumo_id = $1
		ORDER BY creado_en DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, insumoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoStock
	for rows.Next() {
		var m entity.MovimientoStock
		if err := rows.Scan(&m.ID, &m.InsumoID, &m.Tipo, &m.Cantidad, &m.Fecha,
			&m.UsuarioID, &m.Referencia, &m.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan movimiento stock: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumByInsumo suma con signo todos los movimientos del insumo.
func (r *MovimientoStockRepo) SumByInsumo(insumoID string) (decimal.Decimal, error) {
	var suma decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad), 0) FROM movimientos_stock WHERE insumo_id = $1`,
		insumoID,
	).Scan(&suma)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movimientos stock: %w", err)
	}
	return suma, nil
}
