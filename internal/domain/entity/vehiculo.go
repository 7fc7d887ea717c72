package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehiculo de la flota municipal.
type Vehiculo struct {
	ID          string
	Patente     string
	Descripcion string
	AreaID      string
	Activo      bool
}

// HojaRuta es el parte diario de un viaje: vehículo, chofer, destino y
// odómetros. KmRecorridos se deriva de los odómetros cuando es positivo.
type HojaRuta struct {
	ID                string
	Fecha             time.Time
	VehiculoID        string
	Chofer            string
	Destino           string
	KmSalida          decimal.Decimal
	KmRegreso         decimal.Decimal
	KmRecorridos      decimal.Decimal
	CombustibleLitros decimal.Decimal
	Observaciones     string
	CreadoPorID       string
	CreadoEn          time.Time
}

// CalcularKm fija KmRecorridos a partir de los odómetros si el regreso
// supera la salida; si no, conserva el valor cargado a mano.
func (h *HojaRuta) CalcularKm() {
	if h.KmRegreso.GreaterThan(h.KmSalida) {
		h.KmRecorridos = h.KmRegreso.Sub(h.KmSalida)
	}
}
