package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.OrdenRepository = (*OrdenRepo)(nil)

// OrdenRepo implementación de OrdenRepository sobre PostgreSQL (usable con pool o tx).
type OrdenRepo struct {
	q Querier
}

// NewOrdenRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrdenRepository(q Querier) *OrdenRepo {
	return &OrdenRepo{q: q}
}

const ordenSelect = `
	SELECT id, numero, fecha, estado, rubro, COALESCE(proveedor_id::text, ''), proveedor_nombre, proveedor_cuit,
	       COALESCE(area_id::text, ''), observaciones, COALESCE(creado_por_id::text, ''), COALESCE(autorizado_por_id::text, ''), creado_en, actualizado_en
	FROM ordenes`

func scanOrden(row pgx.Row) (*entity.Orden, error) {
	var o entity.Orden
	err := row.Scan(
		&o.ID, &o.Numero, &o.Fecha, &o.Estado, &o.Rubro, &o.ProveedorID, &o.ProveedorNombre, &o.ProveedorCUIT,
		&o.AreaID, &o.Observaciones, &o.CreadoPorID, &o.AutorizadoPorID, &o.CreadoEn, &o.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la orden y sus líneas.
func (r *OrdenRepo) Create(orden *entity.Orden, lineas []*entity.OrdenLinea) error {
	query := `
		INSERT INTO ordenes (id, numero, fecha, estado, rubro, proveedor_id, proveedor_nombre, proveedor_cuit, area_id, observaciones, creado_por_id, autorizado_por_id, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, NULLIF($9, '')::uuid, $10, NULLIF($11, '')::uuid, NULLIF($12, '')::uuid, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.Numero, orden.Fecha, orden.Estado, orden.Rubro,
		orden.ProveedorID, orden.ProveedorNombre, orden.ProveedorCUIT,
		orden.AreaID, orden.Observaciones, orden.CreadoPorID, orden.AutorizadoPorID,
		orden.CreadoEn, orden.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden: %w", err)
	}
	return r.insertLineas(lineas)
}

func (r *OrdenRepo) insertLineas(lineas []*entity.OrdenLinea) error {
	query := `
		INSERT INTO orden_lineas (id, orden_id, categoria_id, area_id, descripcion, monto, beneficiario_id)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, NULLIF($7, '')::uuid)`
	for _, l := range lineas {
		_, err := r.q.Exec(context.Background(), query,
			l.ID, l.OrdenID, l.CategoriaID, l.AreaID, l.Descripcion, l.Monto, l.BeneficiarioID,
		)
		if err != nil {
			return fmt.Errorf("insert orden linea: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrdenRepo) GetByID(id string) (*entity.Orden, error) {
	orden, err := scanOrden(r.q.QueryRow(context.Background(), ordenSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return orden, nil
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *OrdenRepo) GetForUpdate(id string) (*entity.Orden, error) {
	orden, err := scanOrden(r.q.QueryRow(context.Background(), ordenSelect+` WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden for update: %w", err)
	}
	return orden, nil
}

// Update actualiza la cabecera de la orden.
func (r *OrdenRepo) Update(orden *entity.Orden) error {
	query := `
		UPDATE ordenes SET fecha = $2, proveedor_id = NULLIF($3, '')::uuid, proveedor_nombre = $4, proveedor_cuit = $5, area_id = NULLIF($6, '')::uuid, observaciones = $7, autorizado_por_id = NULLIF($8, '')::uuid, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		orden.ID, orden.Fecha, orden.ProveedorID, orden.ProveedorNombre, orden.ProveedorCUIT,
		orden.AreaID, orden.Observaciones, orden.AutorizadoPorID, orden.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update orden: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado de la orden.
func (r *OrdenRepo) UpdateEstado(id, estado, actualizadoPorID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ordenes SET estado = $2, actualizado_en = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado orden: %w", err)
	}
	return nil
}

// List lista órdenes según filtro. Estado vacío = pendientes; "TODAS" = sin filtro.
func (r *OrdenRepo) List(filtro repository.OrdenFiltro) ([]*entity.Orden, error) {
	query := ordenSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	switch filtro.Estado {
	case "":
		query += ` AND estado NOT IN ('CERRADA', 'ANULADA')`
	case "TODAS":
	default:
		n++
		query += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, filtro.Estado)
	}
	if filtro.Rubro != "" {
		n++
		query += fmt.Sprintf(" AND rubro = $%d", n)
		args = append(args, filtro.Rubro)
	}
	if filtro.Q != "" {
		n++
		query += fmt.Sprintf(" AND (numero ILIKE $%d OR proveedor_nombre ILIKE $%d OR proveedor_cuit ILIKE $%d OR observaciones ILIKE $%d)", n, n, n, n)
		args = append(args, "%"+filtro.Q+"%")
	}
	if filtro.Desde != nil {
		n++
		query += fmt.Sprintf(" AND fecha >= $%d", n)
		args = append(args, *filtro.Desde)
	}
	if filtro.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND fecha < $%d", n)
		args = append(args, *filtro.Hasta)
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC, numero DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orden
	for rows.Next() {
		var o entity.Orden
		if err := rows.Scan(&o.ID, &o.Numero, &o.Fecha, &o.Estado, &o.Rubro, &o.ProveedorID, &o.ProveedorNombre, &o.ProveedorCUIT,
			&o.AreaID, &o.Observaciones, &o.CreadoPorID, &o.AutorizadoPorID, &o.CreadoEn, &o.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListLineas devuelve las líneas de la orden en orden de carga.
func (r *OrdenRepo) ListLineas(ordenID string) ([]*entity.OrdenLinea, error) {
	query := `
		SELECT id, orden_id, categoria_id, COALESCE(area_id::text, ''), descripcion, monto, COALESCE(beneficiario_id::text, '')
		FROM orden_lineas WHERE orden_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ordenID)
	if err != nil {
		return nil, fmt.Errorf("list orden lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenLinea
	for rows.Next() {
		var l entity.OrdenLinea
		if err := rows.Scan(&l.ID, &l.OrdenID, &l.CategoriaID, &l.AreaID, &l.Descripcion, &l.Monto, &l.BeneficiarioID); err != nil {
			return nil, fmt.Errorf("scan orden linea: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ReplaceLineas reemplaza el detalle completo de la orden.
func (r *OrdenRepo) ReplaceLineas(ordenID string, lineas []*entity.OrdenLinea) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orden_lineas WHERE orden_id = $1`, ordenID)
	if err != nil {
		return fmt.Errorf("delete orden lineas: %w", err)
	}
	return r.insertLineas(lineas)
}

// MaxNumeroConPrefijo devuelve el mayor sufijo numérico de las órdenes del
// rubro. Con "AS-001" y "AS-014" devuelve 14; sin órdenes devuelve 0.
func (r *OrdenRepo) MaxNumeroConPrefijo(prefijo string) (int, error) {
	query := `
		SELECT COALESCE(MAX(split_part(numero, '-', 2)::int), 0)
		FROM ordenes WHERE numero LIKE $1 || '-%'`
	var max int
	if err := r.q.QueryRow(context.Background(), query, prefijo).Scan(&max); err != nil {
		return 0, fmt.Errorf("max numero orden: %w", err)
	}
	return max, nil
}
