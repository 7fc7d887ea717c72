package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación de InsumoRepository sobre PostgreSQL (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador de insumos. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

func scanInsumo(row pgx.Row) (*entity.Insumo, error) {
	var i entity.Insumo
	err := row.Scan(
		&i.ID, &i.Nombre, &i.CategoriaID, &i.Codigo, &i.Unidad,
		&i.StockActual, &i.StockMinimo, &i.EsHerramienta, &i.Descripcion, &i.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un insumo nuevo. El stock inicia en el valor de la entidad (normalmente cero).
func (r *InsumoRepo) Create(insumo *entity.Insumo) error {
	query := `
		INSERT INTO insumos (id, nombre, categoria_id, codigo, unidad, stock_actual, stock_minimo, es_herramienta, descripcion, actualizado_en)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.CategoriaID, insumo.Codigo, insumo.Unidad,
		insumo.StockActual, insumo.StockMinimo, insumo.EsHerramienta, insumo.Descripcion, insumo.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *InsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	query := `
		SELECT id, nombre, COALESCE(categoria_id::text, ''), codigo, unidad, stock_actual, stock_minimo, es_herramienta, descripcion, actualizado_en
		FROM insumos WHERE id = $1`
	insumo, err := scanInsumo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return insumo, nil
}

// GetForUpdate obtiene el insumo y bloquea la fila (SELECT FOR UPDATE).
func (r *InsumoRepo) GetForUpdate(id string) (*entity.Insumo, error) {
	query := `
		SELECT id, nombre, COALESCE(categoria_id::text, ''), codigo, unidad, stock_actual, stock_minimo, es_herramienta, descripcion, actualizado_en
		FROM insumos WHERE id = $1
		FOR UPDATE`
	insumo, err := scanInsumo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo for update: %w", err)
	}
	return insumo, nil
}

// Update actualiza los datos de catálogo. No toca stock_actual.
func (r *InsumoRepo) Update(insumo *entity.Insumo) error {
	query := `
		UPDATE insumos SET nombre = $2, categoria_id = NULLIF($3, '')::uuid, codigo = $4, unidad = $5, stock_minimo = $6, es_herramienta = $7, descripcion = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.CategoriaID, insumo.Codigo, insumo.Unidad,
		insumo.StockMinimo, insumo.EsHerramienta, insumo.Descripcion, insumo.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock derivado. Solo se llama dentro de la
// transacción que registró el movimiento.
func (r *InsumoRepo) UpdateStock(id string, stock decimal.Decimal, actualizadoEn time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE insumos SET stock_actual = $2, actualizado_en = $3 WHERE id = $1`,
		id, stock, actualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update stock insumo: %w", err)
	}
	return nil
}

// List lista insumos según filtro, ordenados por nombre.
func (r *InsumoRepo) List(filtro repository.InsumoFiltro) ([]*entity.Insumo, error) {
	query := `
		SELECT id, nombre, COALESCE(categoria_id::text, ''), codigo, unidad, stock_actual, stock_minimo, es_herramienta, descripcion, actualizado_en
		FROM insumos WHERE 1=1`
	args := []any{}
	n := 0
	if filtro.Q != "" {
		n++
		query += fmt.Sprintf(" AND (nombre ILIKE $%d OR codigo ILIKE $%d)", n, n)
		args = append(args, "%"+filtro.Q+"%")
	}
	if filtro.CategoriaID != "" {
		n++
		query += fmt.Sprintf(" AND categoria_id = $%d", n)
		args = append(args, filtro.CategoriaID)
	}
	if filtro.SoloBajoMinimo {
		query += " AND stock_actual < stock_minimo"
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insumo
	for rows.Next() {
		var i entity.Insumo
		if err := rows.Scan(&i.ID, &i.Nombre, &i.CategoriaID, &i.Codigo, &i.Unidad,
			&i.StockActual, &i.StockMinimo, &i.EsHerramienta, &i.Descripcion, &i.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
