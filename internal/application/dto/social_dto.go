package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearBeneficiarioRequest body para POST /api/beneficiarios.
type CrearBeneficiarioRequest struct {
	Apellido         string          `json:"apellido" validate:"required,max=100"`
	Nombre           string          `json:"nombre" validate:"required,max=100"`
	DNI              string          `json:"dni" validate:"required,numeric,min=7,max=9"`
	Telefono         string          `json:"telefono" validate:"omitempty,max=30"`
	Direccion        string          `json:"direccion" validate:"omitempty,max=200"`
	Barrio           string          `json:"barrio" validate:"omitempty,max=100"`
	PagaServicios    bool            `json:"paga_servicios"`
	DetalleServicios string          `json:"detalle_servicios" validate:"omitempty,max=300"`
	TipoVinculo      string          `json:"tipo_vinculo" validate:"omitempty,oneof=NINGUNO PLANTA JORNAL EVENTUAL HONORARIO"`
	SectorLaboralID  string          `json:"sector_laboral_id" validate:"omitempty,uuid4"`
	PercibeBeneficio bool            `json:"percibe_beneficio"`
	BeneficioDetalle string          `json:"beneficio_detalle" validate:"omitempty,max=300"`
	BeneficioMonto   decimal.Decimal `json:"beneficio_monto"`
	Notas            string          `json:"notas" validate:"omitempty,max=1000"`
}

// BeneficiarioResponse representación de un beneficiario.
type BeneficiarioResponse struct {
	ID               string          `json:"id"`
	Apellido         string          `json:"apellido"`
	Nombre           string          `json:"nombre"`
	NombreCompleto   string          `json:"nombre_completo"`
	DNI              string          `json:"dni"`
	Telefono         string          `json:"telefono,omitempty"`
	Direccion        string          `json:"direccion,omitempty"`
	Barrio           string          `json:"barrio,omitempty"`
	PagaServicios    bool            `json:"paga_servicios"`
	DetalleServicios string          `json:"detalle_servicios,omitempty"`
	TipoVinculo      string          `json:"tipo_vinculo,omitempty"`
	SectorLaboralID  string          `json:"sector_laboral_id,omitempty"`
	PercibeBeneficio bool            `json:"percibe_beneficio"`
	BeneficioDetalle string          `json:"beneficio_detalle,omitempty"`
	BeneficioMonto   decimal.Decimal `json:"beneficio_monto"`
	Activo           bool            `json:"activo"`
	Notas            string          `json:"notas,omitempty"`
}

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=200"`
	CUIT      string `json:"cuit" validate:"omitempty,numeric,len=11"`
	Telefono  string `json:"telefono" validate:"omitempty,max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion" validate:"omitempty,max=200"`
}

// ProveedorResponse representación de un proveedor.
type ProveedorResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	CUIT      string `json:"cuit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Activo    bool   `json:"activo"`
}

// SugerenciaResponse una opción de autocompletado.
type SugerenciaResponse struct {
	ID       string `json:"id"`
	Etiqueta string `json:"etiqueta"` // "Apellido, Nombre (DNI)" o "Razón social (CUIT)"
}

// CrearAtencionRequest body para POST /api/atenciones.
type CrearAtencionRequest struct {
	Tipo           string    `json:"tipo" validate:"required,oneof=GENERAL SOCIAL OBRAS"`
	BeneficiarioID string    `json:"beneficiario_id" validate:"omitempty,uuid4"`
	NombreTemporal string    `json:"nombre_temporal" validate:"omitempty,max=200"`
	FechaAtencion  time.Time `json:"fecha_atencion"`
	Motivo         string    `json:"motivo" validate:"required,max=300"`
	Detalle        string    `json:"detalle" validate:"omitempty,max=1000"`
	DerivadoAreaID string    `json:"derivado_area_id" validate:"omitempty,uuid4"`
}

// AtencionResponse representación de una atención.
type AtencionResponse struct {
	ID             string    `json:"id"`
	Tipo           string    `json:"tipo"`
	BeneficiarioID string    `json:"beneficiario_id,omitempty"`
	NombreTemporal string    `json:"nombre_temporal,omitempty"`
	FechaAtencion  time.Time `json:"fecha_atencion"`
	Motivo         string    `json:"motivo"`
	Detalle        string    `json:"detalle,omitempty"`
	DerivadoAreaID string    `json:"derivado_area_id,omitempty"`
	Resuelto       bool      `json:"resuelto"`
	CreadoPorID    string    `json:"creado_por_id,omitempty"`
}
