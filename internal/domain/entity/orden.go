package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden (de pago o de compra).
const (
	OrdenBORRADOR   = "BORRADOR"
	OrdenAUTORIZADA = "AUTORIZADA"
	OrdenCERRADA    = "CERRADA"
	OrdenANULADA    = "ANULADA"
)

// Acciones sobre una orden.
const (
	AccionAutorizar = "AUTORIZAR"
	AccionCerrar    = "CERRAR"
	AccionAnular    = "ANULAR"
	AccionReabrir   = "REABRIR"
)

// Rubros principales de una orden (para numeración y reportes).
const (
	RubroAyudasSociales = "AS"
	RubroCombustible    = "CB"
	RubroObras          = "OB"
	RubroServicios      = "SV"
	RubroPersonal       = "PE"
	RubroHerramientas   = "HI"
	RubroOtros          = "OT"
)

// transiciones: (estado actual, acción) -> estado siguiente.
// Todo par fuera de la tabla se rechaza. Las guardas adicionales
// (rol, total, categoría) las aplica el caso de uso.
var transiciones = map[string]map[string]string{
	OrdenBORRADOR: {
		AccionAutorizar: OrdenAUTORIZADA,
		AccionAnular:    OrdenANULADA,
	},
	OrdenAUTORIZADA: {
		AccionCerrar: OrdenCERRADA,
		AccionAnular: OrdenANULADA,
	},
	OrdenANULADA: {
		AccionReabrir: OrdenBORRADOR,
	},
}

// SiguienteEstado devuelve el estado destino para (actual, acción) y si la
// transición existe en la tabla.
func SiguienteEstado(actual, accion string) (string, bool) {
	destino, ok := transiciones[actual][accion]
	return destino, ok
}

// Orden es una orden de pago/compra municipal. El total nunca se almacena:
// se recalcula siempre como suma de las líneas.
type Orden struct {
	ID              string
	Numero          string // autonumerado por rubro: AS-001, CB-002, ...
	Fecha           time.Time
	Estado          string
	Rubro           string
	ProveedorID     string
	ProveedorNombre string // texto que se imprime en la orden
	ProveedorCUIT   string
	AreaID          string
	Observaciones   string
	CreadoPorID     string
	AutorizadoPorID string
	CreadoEn        time.Time
	ActualizadoEn   time.Time
}

// OrdenLinea es una línea monetaria de la orden.
type OrdenLinea struct {
	ID             string
	OrdenID        string
	CategoriaID    string
	AreaID         string
	Descripcion    string
	Monto          decimal.Decimal
	BeneficiarioID string
}

// TotalLineas suma los montos de las líneas.
func TotalLineas(lineas []*OrdenLinea) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Monto)
	}
	return total
}

// EsEditable informa si la orden admite edición de cabecera y líneas.
// Una vez autorizada, solo cambia por acciones de la tabla de transiciones.
func (o *Orden) EsEditable() bool {
	return o.Estado == OrdenBORRADOR
}

// EstaPendiente: ni cerrada ni anulada.
func (o *Orden) EstaPendiente() bool {
	return o.Estado != OrdenCERRADA && o.Estado != OrdenANULADA
}
