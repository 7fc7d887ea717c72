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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const categoriaSelect = `
	SELECT id, nombre, tipo, grupo, es_ayuda_social, es_servicio, es_combustible, es_personal, descripcion
	FROM categorias`

func scanCategoria(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Tipo, &c.Grupo,
		&c.EsAyudaSocial, &c.EsServicio, &c.EsCombustible, &c.EsPersonal, &c.Descripcion,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una categoría. El nombre es único.
func (r *CategoriaRepo) Create(cat *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nombre, tipo, grupo, es_ayuda_social, es_servicio, es_combustible, es_personal, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cat.ID, cat.Nombre, cat.Tipo, cat.Grupo,
		cat.EsAyudaSocial, cat.EsServicio, cat.EsCombustible, cat.EsPersonal, cat.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	cat, err := scanCategoria(r.q.QueryRow(context.Background(), categoriaSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return cat, nil
}

// GetByNombre obtiene una categoría por nombre exacto.
func (r *CategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	cat, err := scanCategoria(r.q.QueryRow(context.Background(), categoriaSelect+` WHERE nombre = $1`, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria by nombre: %w", err)
	}
	return cat, nil
}

// List lista categorías, opcionalmente filtradas por tipo (incluye AMBOS).
func (r *CategoriaRepo) List(tipo string) ([]*entity.Categoria, error) {
	query := categoriaSelect
	args := []any{}
	if tipo != "" {
		query += ` WHERE tipo = $1 OR tipo = 'AMBOS'`
		args = append(args, tipo)
	}
	query += ` ORDER BY nombre`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Tipo, &c.Grupo,
			&c.EsAyudaSocial, &c.EsServicio, &c.EsCombustible, &c.EsPersonal, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
