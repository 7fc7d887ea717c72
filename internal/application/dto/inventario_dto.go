package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearInsumoRequest body para POST /api/insumos.
type CrearInsumoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,max=200"`
	CategoriaID   string          `json:"categoria_id" validate:"omitempty,uuid4"`
	Codigo        string          `json:"codigo" validate:"omitempty,max=50"`
	Unidad        string          `json:"unidad" validate:"required,oneof=UNIDAD KG LT MTS BOLSA CAJA"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	EsHerramienta bool            `json:"es_herramienta"`
	Descripcion   string          `json:"descripcion" validate:"omitempty,max=500"`
}

// ActualizarInsumoRequest body para PUT /api/insumos/:id. No toca el stock.
type ActualizarInsumoRequest struct {
	Nombre        string          `json:"nombre" validate:"required,max=200"`
	CategoriaID   string          `json:"categoria_id" validate:"omitempty,uuid4"`
	Codigo        string          `json:"codigo" validate:"omitempty,max=50"`
	Unidad        string          `json:"unidad" validate:"required,oneof=UNIDAD KG LT MTS BOLSA CAJA"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	EsHerramienta bool            `json:"es_herramienta"`
	Descripcion   string          `json:"descripcion" validate:"omitempty,max=500"`
}

// InsumoResponse representación de un insumo en respuestas.
type InsumoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	CategoriaID   string          `json:"categoria_id,omitempty"`
	Codigo        string          `json:"codigo,omitempty"`
	Unidad        string          `json:"unidad"`
	StockActual   decimal.Decimal `json:"stock_actual"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	BajoMinimo    bool            `json:"bajo_minimo"`
	EsHerramienta bool            `json:"es_herramienta"`
	Descripcion   string          `json:"descripcion,omitempty"`
	ActualizadoEn time.Time       `json:"actualizado_en"`
}

// RegistrarMovimientoStockRequest body para POST /api/insumos/:id/movimientos.
// La cantidad se envía siempre positiva salvo en AJUSTE, donde el signo es el delta.
type RegistrarMovimientoStockRequest struct {
	Tipo       string          `json:"tipo" validate:"required,oneof=ENTRADA SALIDA PRESTAMO DEVOLUCION AJUSTE"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Referencia string          `json:"referencia" validate:"omitempty,max=500"`
}

// MovimientoStockResponse una línea del libro de movimientos.
type MovimientoStockResponse struct {
	ID         string          `json:"id"`
	InsumoID   string          `json:"insumo_id"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Fecha      time.Time       `json:"fecha"`
	Referencia string          `json:"referencia,omitempty"`
	UsuarioID  string          `json:"usuario_id,omitempty"`
	CreadoEn   time.Time       `json:"creado_en"`
}
