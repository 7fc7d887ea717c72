package entity

import "github.com/shopspring/decimal"

// Tipos de vínculo laboral de una persona con la comuna.
const (
	VinculoNinguno   = "NINGUNO"
	VinculoPlanta    = "PLANTA"
	VinculoJornal    = "JORNAL"
	VinculoEventual  = "EVENTUAL"
	VinculoHonorario = "HONORARIO"
)

// Beneficiario es una persona del registro municipal: receptor de ayudas,
// responsable de herramientas prestadas, trabajador eventual o vecino que
// paga servicios.
type Beneficiario struct {
	ID               string
	Nombre           string
	Apellido         string
	DNI              string
	Direccion        string
	Barrio           string
	Telefono         string
	Notas            string
	PagaServicios    bool
	DetalleServicios string
	TipoVinculo      string
	SectorLaboralID  string
	PercibeBeneficio bool
	BeneficioDetalle string
	BeneficioMonto   decimal.Decimal
	Activo           bool
}

// NombreCompleto devuelve "Apellido, Nombre" como se muestra en listados.
func (b *Beneficiario) NombreCompleto() string {
	if b.Apellido == "" {
		return b.Nombre
	}
	return b.Apellido + ", " + b.Nombre
}

// TieneVinculoLaboral: true si tiene algún tipo de vínculo laboral con la comuna.
func (b *Beneficiario) TieneVinculoLaboral() bool {
	return b.TipoVinculo != "" && b.TipoVinculo != VinculoNinguno
}
