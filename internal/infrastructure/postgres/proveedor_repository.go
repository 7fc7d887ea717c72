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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorSelect = `
	SELECT id, nombre, cuit, direccion, telefono, email, activo
	FROM proveedores`

func scanProveedor(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(&p.ID, &p.Nombre, &p.CUIT, &p.Direccion, &p.Telefono, &p.Email, &p.Activo)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un proveedor. El CUIT, si viene, es único.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, cuit, direccion, telefono, email, activo, busqueda)
		VALUES ($1, $2, $3, $4, $5, $6, $7, lower(unaccent($2 || ' ' || $3)))`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.CUIT, p.Direccion, p.Telefono, p.Email, p.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	p, err := scanProveedor(r.q.QueryRow(context.Background(), proveedorSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return p, nil
}

// GetByCUIT obtiene un proveedor por CUIT.
func (r *ProveedorRepo) GetByCUIT(cuit string) (*entity.Proveedor, error) {
	p, err := scanProveedor(r.q.QueryRow(context.Background(), proveedorSelect+` WHERE cuit = $1`, cuit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor by cuit: %w", err)
	}
	return p, nil
}

// Update actualiza los datos de un proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, cuit = $3, direccion = $4, telefono = $5, email = $6, activo = $7,
		       busqueda = lower(unaccent($2 || ' ' || $3))
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.CUIT, p.Direccion, p.Telefono, p.Email, p.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// List lista proveedores activos. Q ya viene normalizado.
func (r *ProveedorRepo) List(q string, limit, offset int) ([]*entity.Proveedor, error) {
	query := proveedorSelect + ` WHERE activo`
	args := []any{}
	n := 0
	if q != "" {
		n++
		query += fmt.Sprintf(" AND busqueda LIKE $%d", n)
		args = append(args, "%"+q+"%")
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	return collectProveedores(rows)
}

// Suggest autocompletado por razón social o CUIT.
func (r *ProveedorRepo) Suggest(q string, n int) ([]*entity.Proveedor, error) {
	query := proveedorSelect + `
		WHERE activo AND busqueda LIKE $1
		ORDER BY nombre LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, "%"+q+"%", n)
	if err != nil {
		return nil, fmt.Errorf("suggest proveedores: %w", err)
	}
	defer rows.Close()
	return collectProveedores(rows)
}

func collectProveedores(rows pgx.Rows) ([]*entity.Proveedor, error) {
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.CUIT, &p.Direccion, &p.Telefono, &p.Email, &p.Activo); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
