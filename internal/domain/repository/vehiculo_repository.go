package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// VehiculoRepository flota municipal.
type VehiculoRepository interface {
	Create(v *entity.Vehiculo) error
	GetByID(id string) (*entity.Vehiculo, error)
	GetByPatente(patente string) (*entity.Vehiculo, error)
	Update(v *entity.Vehiculo) error
	List(soloActivos bool) ([]*entity.Vehiculo, error)
}

// ResumenFlota agregados por vehículo para un rango de fechas.
type ResumenFlota struct {
	VehiculoID string
	Patente    string
	Viajes     int
	Km         decimal.Decimal
	Litros     decimal.Decimal // cargas de combustible imputadas al vehículo
}

// HojaRutaFiltro parámetros de listado de hojas de ruta.
type HojaRutaFiltro struct {
	VehiculoID string
	Desde      *time.Time
	Hasta      *time.Time
	Limit      int
	Offset     int
}

// HojaRutaRepository partes diarios de uso de vehículos.
type HojaRutaRepository interface {
	Create(h *entity.HojaRuta) error
	GetByID(id string) (*entity.HojaRuta, error)
	Update(h *entity.HojaRuta) error
	List(filtro HojaRutaFiltro) ([]*entity.HojaRuta, error)
	Resumen(desde, hasta time.Time) ([]*ResumenFlota, error)
}
