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

var _ repository.BeneficiarioRepository = (*BeneficiarioRepo)(nil)

// BeneficiarioRepo implementación de BeneficiarioRepository sobre PostgreSQL.
// Las búsquedas usan la columna derivada busqueda (apellido + nombre + dni sin
// tildes, en minúsculas) para que el autocompletado no dependa de cómo se
// tipeó el nombre.
type BeneficiarioRepo struct {
	q Querier
}

// NewBeneficiarioRepository construye el adaptador del padrón. Pasar pool o tx (Querier).
func NewBeneficiarioRepository(q Querier) *BeneficiarioRepo {
	return &BeneficiarioRepo{q: q}
}

const beneficiarioSelect = `
	SELECT id, nombre, apellido, dni, direccion, barrio, telefono, notas,
	       paga_servicios, detalle_servicios, tipo_vinculo, COALESCE(sector_laboral_id::text, ''),
	       percibe_beneficio, beneficio_detalle, beneficio_monto, activo
	FROM beneficiarios`

func scanBeneficiario(row pgx.Row) (*entity.Beneficiario, error) {
	var b entity.Beneficiario
	err := row.Scan(
		&b.ID, &b.Nombre, &b.Apellido, &b.DNI, &b.Direccion, &b.Barrio, &b.Telefono, &b.Notas,
		&b.PagaServicios, &b.DetalleServicios, &b.TipoVinculo, &b.SectorLaboralID,
		&b.PercibeBeneficio, &b.BeneficioDetalle, &b.BeneficioMonto, &b.Activo,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una persona. El DNI es único.
func (r *BeneficiarioRepo) Create(b *entity.Beneficiario) error {
	query := `
		INSERT INTO beneficiarios (id, nombre, apellido, dni, direccion, barrio, telefono, notas, paga_servicios, detalle_servicios, tipo_vinculo, sector_laboral_id, percibe_beneficio, beneficio_detalle, beneficio_monto, activo, busqueda)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, '')::uuid, $13, $14, $15, $16,
		        lower(unaccent($3 || ' ' || $2 || ' ' || $4)))`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Apellido, b.DNI, b.Direccion, b.Barrio, b.Telefono, b.Notas,
		b.PagaServicios, b.DetalleServicios, b.TipoVinculo, b.SectorLaboralID,
		b.PercibeBeneficio, b.BeneficioDetalle, b.BeneficioMonto, b.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert beneficiario: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *BeneficiarioRepo) GetByID(id string) (*entity.Beneficiario, error) {
	b, err := scanBeneficiario(r.q.QueryRow(context.Background(), beneficiarioSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beneficiario: %w", err)
	}
	return b, nil
}

// GetByDNI obtiene una persona por DNI.
func (r *BeneficiarioRepo) GetByDNI(dni string) (*entity.Beneficiario, error) {
	b, err := scanBeneficiario(r.q.QueryRow(context.Background(), beneficiarioSelect+` WHERE dni = $1`, dni))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beneficiario by dni: %w", err)
	}
	return b, nil
}

// Update actualiza los datos de una persona y su columna de búsqueda.
func (r *BeneficiarioRepo) Update(b *entity.Beneficiario) error {
	query := `
		UPDATE beneficiarios SET nombre = $2, apellido = $3, dni = $4, direccion = $5, barrio = $6, telefono = $7, notas = $8,
		       paga_servicios = $9, detalle_servicios = $10, tipo_vinculo = $11, sector_laboral_id = NULLIF($12, '')::uuid,
		       percibe_beneficio = $13, beneficio_detalle = $14, beneficio_monto = $15, activo = $16,
		       busqueda = lower(unaccent($3 || ' ' || $2 || ' ' || $4))
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Apellido, b.DNI, b.Direccion, b.Barrio, b.Telefono, b.Notas,
		b.PagaServicios, b.DetalleServicios, b.TipoVinculo, b.SectorLaboralID,
		b.PercibeBeneficio, b.BeneficioDetalle, b.BeneficioMonto, b.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update beneficiario: %w", err)
	}
	return nil
}

// List lista personas. Q ya viene normalizado (minúsculas, sin tildes).
func (r *BeneficiarioRepo) List(filtro repository.BeneficiarioFiltro) ([]*entity.Beneficiario, error) {
	query := beneficiarioSelect + ` WHERE activo`
	args := []any{}
	n := 0
	if filtro.Q != "" {
		n++
		query += fmt.Sprintf(" AND busqueda LIKE $%d", n)
		args = append(args, "%"+filtro.Q+"%")
	}
	query += fmt.Sprintf(" ORDER BY apellido, nombre LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list beneficiarios: %w", err)
	}
	defer rows.Close()
	return collectBeneficiarios(rows)
}

// Suggest autocompletado por prefijo de apellido, nombre o DNI.
func (r *BeneficiarioRepo) Suggest(q string, n int) ([]*entity.Beneficiario, error) {
	query := beneficiarioSelect + `
		WHERE activo AND busqueda LIKE $1
		ORDER BY apellido, nombre LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, "%"+q+"%", n)
	if err != nil {
		return nil, fmt.Errorf("suggest beneficiarios: %w", err)
	}
	defer rows.Close()
	return collectBeneficiarios(rows)
}

func collectBeneficiarios(rows pgx.Rows) ([]*entity.Beneficiario, error) {
	var list []*entity.Beneficiario
	for rows.Next() {
		var b entity.Beneficiario
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Apellido, &b.DNI, &b.Direccion, &b.Barrio, &b.Telefono, &b.Notas,
			&b.PagaServicios, &b.DetalleServicios, &b.TipoVinculo, &b.SectorLaboralID,
			&b.PercibeBeneficio, &b.BeneficioDetalle, &b.BeneficioMonto, &b.Activo); err != nil {
			return nil, fmt.Errorf("scan beneficiario: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
