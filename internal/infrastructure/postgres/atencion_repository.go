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

var _ repository.AtencionRepository = (*AtencionRepo)(nil)

// AtencionRepo implementación de AtencionRepository sobre PostgreSQL.
type AtencionRepo struct {
	q Querier
}

// NewAtencionRepository construye el adaptador de atenciones. Pasar pool o tx (Querier).
func NewAtencionRepository(q Querier) *AtencionRepo {
	return &AtencionRepo{q: q}
}

const atencionSelect = `
	SELECT id, fecha_atencion, tipo, COALESCE(beneficiario_id::text, ''), nombre_temporal,
	       motivo, detalle, COALESCE(derivado_area_id::text, ''), resuelto,
	       COALESCE(creado_por_id::text, ''), creado_en
	FROM atenciones`

func scanAtencion(row pgx.Row) (*entity.Atencion, error) {
	var a entity.Atencion
	err := row.Scan(
		&a.ID, &a.FechaAtencion, &a.Tipo, &a.BeneficiarioID, &a.NombreTemporal,
		&a.Motivo, &a.Detalle, &a.DerivadoAreaID, &a.Resuelto,
		&a.CreadoPorID, &a.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una atención.
func (r *AtencionRepo) Create(a *entity.Atencion) error {
	query := `
		INSERT INTO atenciones (id, fecha_atencion, tipo, beneficiario_id, nombre_temporal, motivo, detalle, derivado_area_id, resuelto, creado_por_id, creado_en)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, NULLIF($8, '')::uuid, $9, NULLIF($10, '')::uuid, $11)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.FechaAtencion, a.Tipo, a.BeneficiarioID, a.NombreTemporal,
		a.Motivo, a.Detalle, a.DerivadoAreaID, a.Resuelto, a.CreadoPorID, a.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert atencion: %w", err)
	}
	return nil
}

// GetByID obtiene una atención por ID.
func (r *AtencionRepo) GetByID(id string) (*entity.Atencion, error) {
	a, err := scanAtencion(r.q.QueryRow(context.Background(), atencionSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get atencion: %w", err)
	}
	return a, nil
}

// Update actualiza una atención.
func (r *AtencionRepo) Update(a *entity.Atencion) error {
	query := `
		UPDATE atenciones SET fecha_atencion = $2, tipo = $3, beneficiario_id = NULLIF($4, '')::uuid,
		       nombre_temporal = $5, motivo = $6, detalle = $7,
		       derivado_area_id = NULLIF($8, '')::uuid, resuelto = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.FechaAtencion, a.Tipo, a.BeneficiarioID, a.NombreTemporal,
		a.Motivo, a.Detalle, a.DerivadoAreaID, a.Resuelto,
	)
	if err != nil {
		return fmt.Errorf("update atencion: %w", err)
	}
	return nil
}

// List lista atenciones según filtro, más recientes primero.
func (r *AtencionRepo) List(filtro repository.AtencionFiltro) ([]*entity.Atencion, error) {
	query := atencionSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	if filtro.Tipo != "" {
		n++
		query += fmt.Sprintf(" AND tipo = $%d", n)
		args = append(args, filtro.Tipo)
	}
	if filtro.BeneficiarioID != "" {
		n++
		query += fmt.Sprintf(" AND beneficiario_id = $%d", n)
		args = append(args, filtro.BeneficiarioID)
	}
	if filtro.Desde != nil {
		n++
		query += fmt.Sprintf(" AND fecha_atencion >= $%d", n)
		args = append(args, *filtro.Desde)
	}
	if filtro.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND fecha_atencion < $%d", n)
		args = append(args, *filtro.Hasta)
	}
	query += fmt.Sprintf(" ORDER BY fecha_atencion DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list atenciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Atencion
	for rows.Next() {
		var a entity.Atencion
		if err := rows.Scan(&a.ID, &a.FechaAtencion, &a.Tipo, &a.BeneficiarioID, &a.NombreTemporal,
			&a.Motivo, &a.Detalle, &a.DerivadoAreaID, &a.Resuelto,
			&a.CreadoPorID, &a.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan atencion: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountDesde cuenta atenciones registradas desde una fecha.
func (r *AtencionRepo) CountDesde(desde time.Time) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM atenciones WHERE fecha_atencion >= $1`, desde,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count atenciones: %w", err)
	}
	return total, nil
}
