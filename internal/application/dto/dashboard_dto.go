package dto

import "github.com/shopspring/decimal"

// DashboardResponse tablero mensual de gestión.
type DashboardResponse struct {
	Mes                string               `json:"mes"` // formato 2006-01
	Ingresos           decimal.Decimal      `json:"ingresos"`
	Gastos             decimal.Decimal      `json:"gastos"`
	Resultado          decimal.Decimal      `json:"resultado"`
	Ayudas             decimal.Decimal      `json:"ayudas_sociales"`
	Personal           decimal.Decimal      `json:"personal"`
	Servicios          decimal.Decimal      `json:"servicios"`
	Combustible        decimal.Decimal      `json:"combustible"`
	OrdenesPendientes  int                  `json:"ordenes_pendientes"`
	PrestamosAbiertos  int                  `json:"prestamos_abiertos"`
	TareasAbiertas     int                  `json:"tareas_abiertas"`
	InsumosBajoMinimo  []InsumoResponse     `json:"insumos_bajo_minimo,omitempty"`
	UltimosMovimientos []MovimientoResponse `json:"ultimos_movimientos,omitempty"`
}
