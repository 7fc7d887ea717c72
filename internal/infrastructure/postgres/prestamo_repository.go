package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.PrestamoRepository = (*PrestamoRepo)(nil)

// PrestamoRepo implementación de PrestamoRepository sobre PostgreSQL (usable con pool o tx).
type PrestamoRepo struct {
	q Querier
}

// NewPrestamoRepository construye el adaptador de préstamos. Pasar pool o tx (Querier).
func NewPrestamoRepository(q Querier) *PrestamoRepo {
	return &PrestamoRepo{q: q}
}

func scanPrestamo(row pgx.Row) (*entity.Prestamo, error) {
	var p entity.Prestamo
	err := row.Scan(
		&p.ID, &p.InsumoID, &p.BeneficiarioID, &p.Cantidad, &p.FechaSalida,
		&p.FechaDevolucion, &p.Estado, &p.ObsSalida, &p.ObsDevolucion, &p.CreadoPorID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un préstamo nuevo.
func (r *PrestamoRepo) Create(p *entity.Prestamo) error {
	query := `
		INSERT INTO prestamos (id, insumo_id, beneficiario_id, cantidad, fecha_salida, fecha_devolucion, estado, obs_salida, obs_devolucion, creado_por_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, '')::uuid)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.InsumoID, p.BeneficiarioID, p.Cantidad, p.FechaSalida,
		p.FechaDevolucion, p.Estado, p.ObsSalida, p.ObsDevolucion, p.CreadoPorID,
	)
	if err != nil {
		return fmt.Errorf("insert prestamo: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo por ID.
func (r *PrestamoRepo) GetByID(id string) (*entity.Prestamo, error) {
	query := `
		SELECT id, insumo_id, beneficiario_id, cantidad, fecha_salida, fecha_devolucion, estado, obs_salida, obs_devolucion, COALESCE(creado_por_id::text, '')
		FROM prestamos WHERE id = $1`
	p, err := scanPrestamo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prestamo: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el préstamo y bloquea la fila (SELECT FOR UPDATE).
func (r *PrestamoRepo) GetForUpdate(id string) (*entity.Prestamo, error) {
	query := `
		SELECT id, insumo_id, beneficiario_id, cantidad, fecha_salida, fecha_devolucion, estado, obs_salida, obs_devolucion, COALESCE(creado_por_id::text, '')
		FROM prestamos WHERE id = $1
		FOR UPDATE`
	p, err := scanPrestamo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prestamo for update: %w", err)
	}
	return p, nil
}

// Update actualiza estado, fecha de devolución y observaciones.
func (r *PrestamoRepo) Update(p *entity.Prestamo) error {
	query := `
		UPDATE prestamos SET estado = $2, fecha_devolucion = $3, obs_devolucion = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Estado, p.FechaDevolucion, p.ObsDevolucion,
	)
	if err != nil {
		return fmt.Errorf("update prestamo: %w", err)
	}
	return nil
}

// List lista préstamos según filtro, más reciente primero.
func (r *PrestamoRepo) List(filtro repository.PrestamoFiltro) ([]*entity.Prestamo, error) {
	query := `
		SELECT id, insumo_id, beneficiario_id, cantidad, fecha_salida, fecha_devolucion, estado, obs_salida, obs_devolucion, COALESCE(creado_por_id::text, '')
		FROM prestamos WHERE 1=1`
	args := []any{}
	n := 0
	if filtro.Estado != "" {
		n++
		query += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, filtro.Estado)
	}
	if filtro.InsumoID != "" {
		n++
		query += fmt.Sprintf(" AND insumo_id = $%d", n)
		args = append(args, filtro.InsumoID)
	}
	if filtro.BeneficiarioID != "" {
		n++
		query += fmt.Sprintf(" AND beneficiario_id = $%d", n)
		args = append(args, filtro.BeneficiarioID)
	}
	query += fmt.Sprintf(" ORDER BY fecha_salida DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prestamos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Prestamo
	for rows.Next() {
		var p entity.Prestamo
		if err := rows.Scan(&p.ID, &p.InsumoID, &p.BeneficiarioID, &p.Cantidad, &p.FechaSalida,
			&p.FechaDevolucion, &p.Estado, &p.ObsSalida, &p.ObsDevolucion, &p.CreadoPorID); err != nil {
			return nil, fmt.Errorf("scan prestamo: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
