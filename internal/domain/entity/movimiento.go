package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento financiero.
const (
	MovINGRESO       = "INGRESO"
	MovGASTO         = "GASTO"
	MovTRANSFERENCIA = "TRANSFERENCIA"
)

// Estados de un movimiento financiero. Solo los aprobados impactan en saldos.
const (
	MovBORRADOR  = "BORRADOR"
	MovAPROBADO  = "APROBADO"
	MovRECHAZADO = "RECHAZADO"
)

// Movimiento es un asiento de caja/banco de la comuna: ingreso, gasto o
// transferencia entre cuentas.
type Movimiento struct {
	ID                 string
	Tipo               string
	FechaOperacion     time.Time
	Monto              decimal.Decimal
	CategoriaID        string
	AreaID             string
	ProveedorID        string
	ProveedorNombre    string
	ProveedorCUIT      string
	BeneficiarioID     string
	BeneficiarioNombre string
	BeneficiarioDNI    string
	OrdenID            string // si proviene del cierre de una orden
	VehiculoID         string // cargas de combustible
	Litros             decimal.Decimal
	Descripcion        string
	Observaciones      string
	Estado             string
	CreadoPorID        string
	CreadoEn           time.Time
}

// AfectaSaldo indica si debería contarse en saldos y reportes.
func (m *Movimiento) AfectaSaldo() bool {
	return m.Estado == MovAPROBADO
}
