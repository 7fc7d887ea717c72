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

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository sobre PostgreSQL.
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador de flota. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

const vehiculoSelect = `
	SELECT id, patente, descripcion, COALESCE(area_id::text, ''), activo
	FROM vehiculos`

func scanVehiculo(row pgx.Row) (*entity.Vehiculo, error) {
	var v entity.Vehiculo
	err := row.Scan(&v.ID, &v.Patente, &v.Descripcion, &v.AreaID, &v.Activo)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un vehículo. La patente es única.
func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (id, patente, descripcion, area_id, activo)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Patente, v.Descripcion, v.AreaID, v.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) {
	v, err := scanVehiculo(r.q.QueryRow(context.Background(), vehiculoSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return v, nil
}

// GetByPatente obtiene un vehículo por patente exacta.
func (r *VehiculoRepo) GetByPatente(patente string) (*entity.Vehiculo, error) {
	v, err := scanVehiculo(r.q.QueryRow(context.Background(), vehiculoSelect+` WHERE patente = $1`, patente))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo by patente: %w", err)
	}
	return v, nil
}

// Update actualiza los datos de un vehículo.
func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos SET patente = $2, descripcion = $3, area_id = NULLIF($4, '')::uuid, activo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Patente, v.Descripcion, v.AreaID, v.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehiculo: %w", err)
	}
	return nil
}

// List lista la flota por patente.
func (r *VehiculoRepo) List(soloActivos bool) ([]*entity.Vehiculo, error) {
	query := vehiculoSelect
	if soloActivos {
		query += ` WHERE activo`
	}
	query += ` ORDER BY patente`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehiculo
	for rows.Next() {
		var v entity.Vehiculo
		if err := rows.Scan(&v.ID, &v.Patente, &v.Descripcion, &v.AreaID, &v.Activo); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
