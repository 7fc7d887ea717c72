package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovStockENTRADA    = "ENTRADA"    // compra / ingreso
	MovStockSALIDA     = "SALIDA"     // consumo
	MovStockPRESTAMO   = "PRESTAMO"   // salida por préstamo de herramienta
	MovStockDEVOLUCION = "DEVOLUCION" // reingreso por devolución
	MovStockAJUSTE     = "AJUSTE"     // ajuste de inventario (puede ser negativo)
)

// MovimientoStock es un registro histórico inmutable: una vez creado no se
// edita ni se borra; las correcciones son contramovimientos nuevos.
// Cantidad se guarda ya con signo aplicado.
type MovimientoStock struct {
	ID         string
	InsumoID   string
	Tipo       string
	Cantidad   decimal.Decimal // positiva para ENTRADA/DEVOLUCION, negativa para SALIDA/PRESTAMO
	Fecha      time.Time
	UsuarioID  string
	Referencia string // ej: "Préstamo a Perez, Juan" o "Compra OC-005"
	CreadoEn   time.Time
}

// TipoMovStockValido informa si el tipo pertenece al conjunto conocido.
func TipoMovStockValido(tipo string) bool {
	switch tipo {
	case MovStockENTRADA, MovStockSALIDA, MovStockPRESTAMO, MovStockDEVOLUCION, MovStockAJUSTE:
		return true
	}
	return false
}

// DeltaStock devuelve la cantidad con el signo que corresponde al tipo:
// ENTRADA/DEVOLUCION suman, SALIDA/PRESTAMO restan, AJUSTE conserva el signo
// con el que se cargó.
func DeltaStock(tipo string, cantidad decimal.Decimal) decimal.Decimal {
	switch tipo {
	case MovStockSALIDA, MovStockPRESTAMO:
		return cantidad.Neg()
	default:
		return cantidad
	}
}
