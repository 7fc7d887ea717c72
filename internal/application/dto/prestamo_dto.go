package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPrestamoRequest body para POST /api/prestamos.
type CrearPrestamoRequest struct {
	InsumoID       string          `json:"insumo_id" validate:"required,uuid4"`
	BeneficiarioID string          `json:"beneficiario_id" validate:"required,uuid4"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Observacion    string          `json:"observacion" validate:"omitempty,max=500"`
}

// DevolucionPrestamoRequest body para POST /api/prestamos/:id/devolucion.
type DevolucionPrestamoRequest struct {
	Observacion string `json:"observacion" validate:"omitempty,max=500"`
}

// PrestamoResponse representación de un préstamo en respuestas.
type PrestamoResponse struct {
	ID              string          `json:"id"`
	InsumoID        string          `json:"insumo_id"`
	BeneficiarioID  string          `json:"beneficiario_id"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	Estado          string          `json:"estado"`
	FechaSalida     time.Time       `json:"fecha_salida"`
	FechaDevolucion *time.Time      `json:"fecha_devolucion,omitempty"`
	ObsSalida       string          `json:"obs_salida,omitempty"`
	ObsDevolucion   string          `json:"obs_devolucion,omitempty"`
}
