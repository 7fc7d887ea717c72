package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearMovimientoRequest body para POST /api/movimientos.
type CrearMovimientoRequest struct {
	Tipo           string          `json:"tipo" validate:"required,oneof=INGRESO GASTO TRANSFERENCIA"`
	Fecha          time.Time       `json:"fecha"`
	Monto          decimal.Decimal `json:"monto"`
	CategoriaID    string          `json:"categoria_id" validate:"omitempty,uuid4"`
	Descripcion    string          `json:"descripcion" validate:"required,max=300"`
	ProveedorID    string          `json:"proveedor_id" validate:"omitempty,uuid4"`
	BeneficiarioID string          `json:"beneficiario_id" validate:"omitempty,uuid4"`
	VehiculoID     string          `json:"vehiculo_id" validate:"omitempty,uuid4"`
	Litros         decimal.Decimal `json:"litros"`
	Estado         string          `json:"estado" validate:"omitempty,oneof=BORRADOR APROBADO"`
}

// CambiarEstadoMovimientoRequest body para POST /api/movimientos/:id/estado.
type CambiarEstadoMovimientoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=APROBADO RECHAZADO"`
}

// MovimientoResponse representación de un movimiento financiero.
type MovimientoResponse struct {
	ID              string          `json:"id"`
	Tipo            string          `json:"tipo"`
	Estado          string          `json:"estado"`
	Fecha           time.Time       `json:"fecha"`
	Monto           decimal.Decimal `json:"monto"`
	CategoriaID     string          `json:"categoria_id,omitempty"`
	CategoriaNombre string          `json:"categoria_nombre,omitempty"`
	Descripcion     string          `json:"descripcion"`
	OrdenID         string          `json:"orden_id,omitempty"`
	ProveedorID     string          `json:"proveedor_id,omitempty"`
	BeneficiarioID  string          `json:"beneficiario_id,omitempty"`
	VehiculoID      string          `json:"vehiculo_id,omitempty"`
	Litros          decimal.Decimal `json:"litros,omitempty"`
	CreadoPorID     string          `json:"creado_por_id,omitempty"`
	CreadoEn        time.Time       `json:"creado_en"`
}
