package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVehiculoRequest body para POST /api/vehiculos.
type CrearVehiculoRequest struct {
	Patente     string `json:"patente" validate:"required,max=10"`
	Descripcion string `json:"descripcion" validate:"required,max=200"`
	AreaID      string `json:"area_id" validate:"omitempty,uuid4"`
	Activo      bool   `json:"activo"`
}

// ActualizarVehiculoRequest body para PUT /api/vehiculos/:id.
type ActualizarVehiculoRequest struct {
	Descripcion string `json:"descripcion" validate:"required,max=200"`
	AreaID      string `json:"area_id" validate:"omitempty,uuid4"`
	Activo      bool   `json:"activo"`
}

// VehiculoResponse representación de un vehículo.
type VehiculoResponse struct {
	ID          string `json:"id"`
	Patente     string `json:"patente"`
	Descripcion string `json:"descripcion"`
	AreaID      string `json:"area_id,omitempty"`
	Activo      bool   `json:"activo"`
}

// CrearHojaRutaRequest body para POST /api/hojas-ruta.
type CrearHojaRutaRequest struct {
	VehiculoID string          `json:"vehiculo_id" validate:"required,uuid4"`
	Fecha      time.Time       `json:"fecha"`
	Chofer     string          `json:"chofer" validate:"required,max=100"`
	Destino    string          `json:"destino" validate:"omitempty,max=200"`
	KmSalida   decimal.Decimal `json:"km_salida"`
	KmRegreso  decimal.Decimal `json:"km_regreso"`
	Litros     decimal.Decimal `json:"combustible_litros"`
	Notas      string          `json:"notas" validate:"omitempty,max=500"`
}

// HojaRutaResponse representación de una hoja de ruta.
type HojaRutaResponse struct {
	ID         string          `json:"id"`
	VehiculoID string          `json:"vehiculo_id"`
	Fecha      time.Time       `json:"fecha"`
	Chofer     string          `json:"chofer"`
	Destino    string          `json:"destino,omitempty"`
	KmSalida   decimal.Decimal `json:"km_salida"`
	KmRegreso  decimal.Decimal `json:"km_regreso"`
	Km         decimal.Decimal `json:"km_recorridos"`
	Litros     decimal.Decimal `json:"combustible_litros"`
	Notas      string          `json:"notas,omitempty"`
}

// ResumenFlotaResponse agregados por vehículo.
type ResumenFlotaResponse struct {
	VehiculoID string          `json:"vehiculo_id"`
	Patente    string          `json:"patente"`
	Viajes     int             `json:"viajes"`
	Km         decimal.Decimal `json:"km"`
	Litros     decimal.Decimal `json:"litros"`
}
