package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// InsumoFiltro parámetros de listado de insumos.
type InsumoFiltro struct {
	Q              string // búsqueda por nombre o código
	CategoriaID    string
	SoloBajoMinimo bool
	Limit          int
	Offset         int
}

// InsumoRepository puerto de persistencia de insumos. GetForUpdate se usa
// dentro de transacciones para serializar escrituras sobre el stock.
type InsumoRepository interface {
	Create(insumo *entity.Insumo) error
	GetByID(id string) (*entity.Insumo, error)
	// GetForUpdate bloquea la fila del insumo (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Insumo, error)
	Update(insumo *entity.Insumo) error
	// UpdateStock escribe el stock derivado; solo debe llamarse dentro de la
	// misma transacción que registró el movimiento.
	UpdateStock(id string, stock decimal.Decimal, actualizadoEn time.Time) error
	List(filtro InsumoFiltro) ([]*entity.Insumo, error)
}

// CategoriaInsumoRepository catálogo de categorías de insumos.
type CategoriaInsumoRepository interface {
	Create(cat *entity.CategoriaInsumo) error
	List() ([]*entity.CategoriaInsumo, error)
}
