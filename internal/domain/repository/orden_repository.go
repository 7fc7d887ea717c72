package repository

import (
	"time"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// OrdenFiltro parámetros de listado de órdenes.
type OrdenFiltro struct {
	Estado string // vacío = pendientes (ni cerradas ni anuladas); "TODAS" = sin filtro
	Rubro  string
	Q      string // número, proveedor, CUIT u observaciones
	Desde  *time.Time
	Hasta  *time.Time
	Limit  int
	Offset int
}

// OrdenRepository puerto de persistencia de órdenes y sus líneas.
type OrdenRepository interface {
	Create(orden *entity.Orden, lineas []*entity.OrdenLinea) error
	GetByID(id string) (*entity.Orden, error)
	// GetForUpdate bloquea la fila de la orden: dos cierres concurrentes no
	// pueden pasar los dos la guarda de estado.
	GetForUpdate(id string) (*entity.Orden, error)
	Update(orden *entity.Orden) error
	UpdateEstado(id, estado, actualizadoPorID string) error
	List(filtro OrdenFiltro) ([]*entity.Orden, error)

	ListLineas(ordenID string) ([]*entity.OrdenLinea, error)
	// ReplaceLineas reemplaza el detalle completo (solo órdenes en borrador).
	ReplaceLineas(ordenID string, lineas []*entity.OrdenLinea) error

	// MaxNumeroConPrefijo devuelve el mayor sufijo numérico entre las órdenes
	// cuyo número empieza con "PREFIJO-" (para autonumerar AS-001, AS-002...).
	MaxNumeroConPrefijo(prefijo string) (int, error)
}
