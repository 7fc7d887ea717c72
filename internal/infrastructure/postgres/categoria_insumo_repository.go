package postgres

import (
	"context"
	"fmt"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.CategoriaInsumoRepository = (*CategoriaInsumoRepo)(nil)

// CategoriaInsumoRepo implementación de CategoriaInsumoRepository sobre PostgreSQL.
type CategoriaInsumoRepo struct {
	q Querier
}

// NewCategoriaInsumoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaInsumoRepository(q Querier) *CategoriaInsumoRepo {
	return &CategoriaInsumoRepo{q: q}
}

// Create persiste una categoría de insumos. El nombre es único.
func (r *CategoriaInsumoRepo) Create(cat *entity.CategoriaInsumo) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categorias_insumo (id, nombre) VALUES ($1, $2)`,
		cat.ID, cat.Nombre,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria insumo: %w", err)
	}
	return nil
}

// List lista las categorías por nombre.
func (r *CategoriaInsumoRepo) List() ([]*entity.CategoriaInsumo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM categorias_insumo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categorias insumo: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoriaInsumo
	for rows.Next() {
		var c entity.CategoriaInsumo
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan categoria insumo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
