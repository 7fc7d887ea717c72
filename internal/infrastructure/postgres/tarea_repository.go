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

var _ repository.TareaRepository = (*TareaRepo)(nil)

// TareaRepo implementación de TareaRepository sobre PostgreSQL.
type TareaRepo struct {
	q Querier
}

// NewTareaRepository construye el adaptador de agenda. Pasar pool o tx (Querier).
func NewTareaRepository(q Querier) *TareaRepo {
	return &TareaRepo{q: q}
}

const tareaSelect = `
	SELECT id, titulo, descripcion, tipo, prioridad, estado, ambito,
	       fecha_vencimiento, fecha_recordatorio, fecha_completada,
	       COALESCE(responsable_id::text, ''), COALESCE(orden_id::text, ''), COALESCE(movimiento_id::text, ''),
	       COALESCE(beneficiario_id::text, ''), COALESCE(proveedor_id::text, ''),
	       COALESCE(creado_por_id::text, ''), creado_en
	FROM tareas`

func scanTarea(row pgx.Row) (*entity.Tarea, error) {
	var t entity.Tarea
	err := row.Scan(
		&t.ID, &t.Titulo, &t.Descripcion, &t.Tipo, &t.Prioridad, &t.Estado, &t.Ambito,
		&t.FechaVencimiento, &t.FechaRecordatorio, &t.FechaCompletada,
		&t.ResponsableID, &t.OrdenID, &t.MovimientoID,
		&t.BeneficiarioID, &t.ProveedorID,
		&t.CreadoPorID, &t.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una tarea.
func (r *TareaRepo) Create(t *entity.Tarea) error {
	query := `
		INSERT INTO tareas (id, titulo, descripcion, tipo, prioridad, estado, ambito, fecha_vencimiento, fecha_recordatorio, fecha_completada, responsable_id, orden_id, movimiento_id, beneficiario_id, proveedor_id, creado_por_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid, NULLIF($12, '')::uuid, NULLIF($13, '')::uuid, NULLIF($14, '')::uuid, NULLIF($15, '')::uuid, NULLIF($16, '')::uuid, $17)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Titulo, t.Descripcion, t.Tipo, t.Prioridad, t.Estado, t.Ambito,
		t.FechaVencimiento, t.FechaRecordatorio, t.FechaCompletada,
		t.ResponsableID, t.OrdenID, t.MovimientoID, t.BeneficiarioID, t.ProveedorID,
		t.CreadoPorID, t.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert tarea: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TareaRepo) GetByID(id string) (*entity.Tarea, error) {
	t, err := scanTarea(r.q.QueryRow(context.Background(), tareaSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarea: %w", err)
	}
	return t, nil
}

// Update actualiza una tarea.
func (r *TareaRepo) Update(t *entity.Tarea) error {
	query := `
		UPDATE tareas SET titulo = $2, descripcion = $3, tipo = $4, prioridad = $5, estado = $6, ambito = $7,
		       fecha_vencimiento = $8, fecha_recordatorio = $9, fecha_completada = $10,
		       responsable_id = NULLIF($11, '')::uuid, orden_id = NULLIF($12, '')::uuid,
		       movimiento_id = NULLIF($13, '')::uuid, beneficiario_id = NULLIF($14, '')::uuid,
		       proveedor_id = NULLIF($15, '')::uuid
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Titulo, t.Descripcion, t.Tipo, t.Prioridad, t.Estado, t.Ambito,
		t.FechaVencimiento, t.FechaRecordatorio, t.FechaCompletada,
		t.ResponsableID, t.OrdenID, t.MovimientoID, t.BeneficiarioID, t.ProveedorID,
	)
	if err != nil {
		return fmt.Errorf("update tarea: %w", err)
	}
	return nil
}

// List lista tareas según filtro. Estado vacío = abiertas; "TODAS" = sin filtro.
func (r *TareaRepo) List(filtro repository.TareaFiltro) ([]*entity.Tarea, error) {
	query := tareaSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	switch filtro.Estado {
	case "":
		query += ` AND estado IN ('PENDIENTE', 'EN_PROCESO')`
	case "TODAS":
	default:
		n++
		query += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, filtro.Estado)
	}
	if filtro.Ambito != "" {
		n++
		query += fmt.Sprintf(" AND ambito = $%d", n)
		args = append(args, filtro.Ambito)
	}
	if filtro.Prioridad != "" {
		n++
		query += fmt.Sprintf(" AND prioridad = $%d", n)
		args = append(args, filtro.Prioridad)
	}
	query += fmt.Sprintf(" ORDER BY fecha_vencimiento, prioridad LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tareas: %w", err)
	}
	defer rows.Close()
	return collectTareas(rows)
}

// CountAbiertas cuenta tareas pendientes o en proceso.
func (r *TareaRepo) CountAbiertas() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tareas WHERE estado IN ('PENDIENTE', 'EN_PROCESO')`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tareas abiertas: %w", err)
	}
	return total, nil
}

// Vencidas devuelve tareas abiertas con recordatorio anterior a ref.
func (r *TareaRepo) Vencidas(ref time.Time, n int) ([]*entity.Tarea, error) {
	query := tareaSelect + `
		WHERE estado IN ('PENDIENTE', 'EN_PROCESO') AND fecha_recordatorio IS NOT NULL AND fecha_recordatorio < $1
		ORDER BY fecha_recordatorio LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, ref, n)
	if err != nil {
		return nil, fmt.Errorf("tareas vencidas: %w", err)
	}
	defer rows.Close()
	return collectTareas(rows)
}

func collectTareas(rows pgx.Rows) ([]*entity.Tarea, error) {
	var list []*entity.Tarea
	for rows.Next() {
		var t entity.Tarea
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Descripcion, &t.Tipo, &t.Prioridad, &t.Estado, &t.Ambito,
			&t.FechaVencimiento, &t.FechaRecordatorio, &t.FechaCompletada,
			&t.ResponsableID, &t.OrdenID, &t.MovimientoID,
			&t.BeneficiarioID, &t.ProveedorID,
			&t.CreadoPorID, &t.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan tarea: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
