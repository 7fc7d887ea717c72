package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de movimientos financieros. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoSelect = `
	SELECT id, tipo, fecha_operacion, monto, COALESCE(categoria_id::text, ''), COALESCE(area_id::text, ''),
	       COALESCE(proveedor_id::text, ''), proveedor_nombre, proveedor_cuit,
	       COALESCE(beneficiario_id::text, ''), beneficiario_nombre, beneficiario_dni,
	       COALESCE(orden_id::text, ''), COALESCE(vehiculo_id::text, ''), litros,
	       descripcion, observaciones, estado, COALESCE(creado_por_id::text, ''), creado_en
	FROM movimientos`

func scanMovimiento(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	err := row.Scan(
		&m.ID, &m.Tipo, &m.FechaOperacion, &m.Monto, &m.CategoriaID, &m.AreaID,
		&m.ProveedorID, &m.ProveedorNombre, &m.ProveedorCUIT,
		&m.BeneficiarioID, &m.BeneficiarioNombre, &m.BeneficiarioDNI,
		&m.OrdenID, &m.VehiculoID, &m.Litros,
		&m.Descripcion, &m.Observaciones, &m.Estado, &m.CreadoPorID, &m.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta un movimiento financiero.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, tipo, fecha_operacion, monto, categoria_id, area_id, proveedor_id, proveedor_nombre, proveedor_cuit, beneficiario_id, beneficiario_nombre, beneficiario_dni, orden_id, vehiculo_id, litros, descripcion, observaciones, estado, creado_por_id, creado_en)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, NULLIF($7, '')::uuid, $8, $9, NULLIF($10, '')::uuid, $11, $12, NULLIF($13, '')::uuid, NULLIF($14, '')::uuid, $15, $16, $17, $18, NULLIF($19, '')::uuid, $20)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Tipo, mov.FechaOperacion, mov.Monto, mov.CategoriaID, mov.AreaID,
		mov.ProveedorID, mov.ProveedorNombre, mov.ProveedorCUIT,
		mov.BeneficiarioID, mov.BeneficiarioNombre, mov.BeneficiarioDNI,
		mov.OrdenID, mov.VehiculoID, mov.Litros,
		mov.Descripcion, mov.Observaciones, mov.Estado, mov.CreadoPorID, mov.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	mov, err := scanMovimiento(r.q.QueryRow(context.Background(), movimientoSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return mov, nil
}

// UpdateEstado aprueba o rechaza un movimiento.
func (r *MovimientoRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movimientos SET estado = $2 WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado movimiento: %w", err)
	}
	return nil
}

// List lista movimientos según filtro. Estado vacío = APROBADO; "TODOS" = sin filtro.
func (r *MovimientoRepo) List(filtro repository.MovimientoFiltro) ([]*entity.Movimiento, error) {
	query := movimientoSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	switch filtro.Estado {
	case "":
		query += ` AND estado = 'APROBADO'`
	case "TODOS":
	default:
		n++
		query += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, filtro.Estado)
	}
	if filtro.Tipo != "" {
		n++
		query += fmt.Sprintf(" AND tipo = $%d", n)
		args = append(args, filtro.Tipo)
	}
	if filtro.Q != "" {
		n++
		query += fmt.Sprintf(" AND (descripcion ILIKE $%d OR proveedor_nombre ILIKE $%d OR beneficiario_nombre ILIKE $%d)", n, n, n)
		args = append(args, "%"+filtro.Q+"%")
	}
	if filtro.Desde != nil {
		n++
		query += fmt.Sprintf(" AND fecha_operacion >= $%d", n)
		args = append(args, *filtro.Desde)
	}
	if filtro.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND fecha_operacion < $%d", n)
		args = append(args, *filtro.Hasta)
	}
	query += fmt.Sprintf(" ORDER BY fecha_operacion DESC, creado_en DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		if err := rows.Scan(&m.ID, &m.Tipo, &m.FechaOperacion, &m.Monto, &m.CategoriaID, &m.AreaID,
			&m.ProveedorID, &m.ProveedorNombre, &m.ProveedorCUIT,
			&m.BeneficiarioID, &m.BeneficiarioNombre, &m.BeneficiarioDNI,
			&m.OrdenID, &m.VehiculoID, &m.Litros,
			&m.Descripcion, &m.Observaciones, &m.Estado, &m.CreadoPorID, &m.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ExistsByOrden informa si la orden ya tiene movimiento vinculado.
func (r *MovimientoRepo) ExistsByOrden(ordenID string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movimientos WHERE orden_id = $1)`,
		ordenID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists movimiento by orden: %w", err)
	}
	return existe, nil
}

// Resumen calcula los agregados del rango [desde, hasta) sobre movimientos
// aprobados, usando los flags semánticos de las categorías.
func (r *MovimientoRepo) Resumen(desde, hasta time.Time) (*repository.ResumenMensual, error) {
	query := `
		SELECT
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'INGRESO'), 0),
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'GASTO'), 0),
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'GASTO' AND c.es_ayuda_social), 0),
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'GASTO' AND c.es_personal), 0),
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'INGRESO' AND c.es_servicio), 0),
			COALESCE(SUM(m.monto) FILTER (WHERE m.tipo = 'GASTO' AND c.es_combustible), 0)
		FROM movimientos m
		LEFT JOIN categorias c ON c.id = m.categoria_id
		WHERE m.estado = 'APROBADO' AND m.fecha_operacion >= $1 AND m.fecha_operacion < $2`
	var res repository.ResumenMensual
	err := r.q.QueryRow(context.Background(), query, desde, hasta).Scan(
		&res.Ingresos, &res.Gastos, &res.Ayudas, &res.Personal, &res.Servicios, &res.Combustible,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen movimientos: %w", err)
	}
	return &res, nil
}

// Ultimos devuelve los n movimientos aprobados más recientes.
func (r *MovimientoRepo) Ultimos(n int) ([]*entity.Movimiento, error) {
	return r.List(repository.MovimientoFiltro{Limit: n})
}
