package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un préstamo de herramienta.
const (
	PrestamoPENDIENTE = "PENDIENTE" // pendiente de devolución
	PrestamoDEVUELTO  = "DEVUELTO"
	PrestamoPERDIDO   = "PERDIDO" // no devuelto; el stock no reingresa
)

// Prestamo controla quién tiene qué herramienta y si la devolvió.
// Un préstamo de cantidad Q genera exactamente un movimiento PRESTAMO al
// abrirse y, al cerrarse, exactamente un movimiento DEVOLUCION por la misma
// cantidad.
type Prestamo struct {
	ID              string
	InsumoID        string
	BeneficiarioID  string // responsable de la herramienta
	Cantidad        decimal.Decimal
	FechaSalida     time.Time
	FechaDevolucion *time.Time
	Estado          string
	ObsSalida       string // estado al salir (ej: nueva, usada)
	ObsDevolucion   string // estado al volver (ej: rota, ok)
	CreadoPorID     string
}
