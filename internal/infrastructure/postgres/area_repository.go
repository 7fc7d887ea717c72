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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación de AreaRepository sobre PostgreSQL.
type AreaRepo struct {
	q Querier
}

// NewAreaRepository construye el adaptador de áreas. Pasar pool o tx (Querier).
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

// Create persiste un área municipal.
func (r *AreaRepo) Create(a *entity.Area) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO areas (id, nombre, descripcion, activo) VALUES ($1, $2, $3, true)`,
		a.ID, a.Nombre, a.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID.
func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	var a entity.Area
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, descripcion, activo FROM areas WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nombre, &a.Descripcion, &a.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// List lista las áreas activas por nombre.
func (r *AreaRepo) List() ([]*entity.Area, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, descripcion, activo FROM areas WHERE activo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Descripcion, &a.Activo); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
