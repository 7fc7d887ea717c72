package repository

import "github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"

// ProveedorRepository padrón de proveedores.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	GetByCUIT(cuit string) (*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	List(q string, limit, offset int) ([]*entity.Proveedor, error)
	Suggest(q string, n int) ([]*entity.Proveedor, error)
}

// AreaRepository áreas municipales imputables en las líneas de orden.
type AreaRepository interface {
	Create(a *entity.Area) error
	GetByID(id string) (*entity.Area, error)
	List() ([]*entity.Area, error)
}
