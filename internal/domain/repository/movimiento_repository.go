package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// MovimientoFiltro parámetros de listado de movimientos financieros.
type MovimientoFiltro struct {
	Tipo   string
	Estado string // vacío = APROBADO; "TODOS" = sin filtro
	Desde  *time.Time
	Hasta  *time.Time
	Q      string // descripción, categoría, persona o proveedor
	Limit  int
	Offset int
}

// ResumenMensual agregados del mes para el dashboard, calculados solo sobre
// movimientos aprobados.
type ResumenMensual struct {
	Ingresos    decimal.Decimal
	Gastos      decimal.Decimal
	Ayudas      decimal.Decimal // categorías es_ayuda_social
	Personal    decimal.Decimal // categorías es_personal
	Servicios   decimal.Decimal // ingresos es_servicio
	Combustible decimal.Decimal // gastos es_combustible
}

// MovimientoRepository puerto de persistencia de movimientos financieros.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	UpdateEstado(id, estado string) error
	List(filtro MovimientoFiltro) ([]*entity.Movimiento, error)
	// ExistsByOrden informa si la orden ya tiene un movimiento vinculado
	// (refuerzo del cierre idempotente por estado).
	ExistsByOrden(ordenID string) (bool, error)
	Resumen(desde, hasta time.Time) (*ResumenMensual, error)
	Ultimos(n int) ([]*entity.Movimiento, error)
}
