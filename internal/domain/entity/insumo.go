package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida de insumos.
const (
	UnidadUnidad = "UNIDAD"
	UnidadKG     = "KG"
	UnidadLT     = "LT"
	UnidadMTS    = "MTS"
	UnidadBolsa  = "BOLSA"
	UnidadCaja   = "CAJA"
)

// CategoriaInsumo agrupa insumos (Construcción, Herramientas, Limpieza, etc.).
type CategoriaInsumo struct {
	ID     string
	Nombre string
}

// Insumo es una unidad de inventario del depósito municipal.
// StockActual es un valor derivado: siempre debe ser igual a la suma con signo
// de todos los movimientos registrados contra el insumo.
type Insumo struct {
	ID            string
	Nombre        string
	CategoriaID   string
	Codigo        string // código interno o de barras
	Unidad        string
	StockActual   decimal.Decimal
	StockMinimo   decimal.Decimal
	EsHerramienta bool // habilita el circuito de préstamos (pañol)
	Descripcion   string
	ActualizadoEn time.Time
}

// BajoMinimo informa si el stock está por debajo del umbral de alerta.
func (i *Insumo) BajoMinimo() bool {
	return i.StockActual.LessThan(i.StockMinimo)
}
