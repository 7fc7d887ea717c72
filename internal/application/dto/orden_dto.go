package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenLineaRequest una línea del detalle de la orden.
type OrdenLineaRequest struct {
	CategoriaID    string          `json:"categoria_id" validate:"required,uuid4"`
	AreaID         string          `json:"area_id" validate:"omitempty,uuid4"`
	BeneficiarioID string          `json:"beneficiario_id" validate:"omitempty,uuid4"`
	Descripcion    string          `json:"descripcion" validate:"required,max=300"`
	Monto          decimal.Decimal `json:"monto"`
}

// CrearOrdenRequest body para POST /api/ordenes. El número se asigna
// automáticamente según el rubro.
type CrearOrdenRequest struct {
	Rubro         string              `json:"rubro" validate:"required,oneof=AS CB OB SV PE HI OT"`
	ProveedorID   string              `json:"proveedor_id" validate:"omitempty,uuid4"`
	Fecha         time.Time           `json:"fecha"`
	Observaciones string              `json:"observaciones" validate:"omitempty,max=1000"`
	Lineas        []OrdenLineaRequest `json:"lineas" validate:"omitempty,dive"`
}

// ActualizarOrdenRequest body para PUT /api/ordenes/:id (solo borradores).
type ActualizarOrdenRequest struct {
	ProveedorID   string              `json:"proveedor_id" validate:"omitempty,uuid4"`
	Fecha         time.Time           `json:"fecha"`
	Observaciones string              `json:"observaciones" validate:"omitempty,max=1000"`
	Lineas        []OrdenLineaRequest `json:"lineas" validate:"omitempty,dive"`
}

// CambiarEstadoOrdenRequest body para POST /api/ordenes/:id/estado.
type CambiarEstadoOrdenRequest struct {
	Accion string `json:"accion" validate:"required,oneof=AUTORIZAR CERRAR ANULAR REABRIR"`
}

// OrdenLineaResponse una línea del detalle en respuestas.
type OrdenLineaResponse struct {
	ID             string          `json:"id"`
	CategoriaID    string          `json:"categoria_id"`
	AreaID         string          `json:"area_id,omitempty"`
	BeneficiarioID string          `json:"beneficiario_id,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Monto          decimal.Decimal `json:"monto"`
}

// OrdenResponse representación de una orden en respuestas.
type OrdenResponse struct {
	ID              string               `json:"id"`
	Numero          string               `json:"numero"`
	Rubro           string               `json:"rubro"`
	Estado          string               `json:"estado"`
	Fecha           time.Time            `json:"fecha"`
	ProveedorID     string               `json:"proveedor_id,omitempty"`
	ProveedorNombre string               `json:"proveedor_nombre,omitempty"`
	ProveedorCUIT   string               `json:"proveedor_cuit,omitempty"`
	Observaciones   string               `json:"observaciones,omitempty"`
	Total           decimal.Decimal      `json:"total"`
	Lineas          []OrdenLineaResponse `json:"lineas,omitempty"`
	CreadoPorID     string               `json:"creado_por_id,omitempty"`
	AutorizadoPorID string               `json:"autorizado_por_id,omitempty"`
	CreadoEn        time.Time            `json:"creado_en"`
}
