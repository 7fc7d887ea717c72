// Package pdf implementa la impresión de órdenes de pago municipales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comuna + título  │  N° Orden + Fecha + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Razón social + CUIT                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Categoría | Área | Monto               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  FIRMAS: Elaboró / Autorizó                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrdenGenerator implementa finanzas.OrdenPDFGenerator usando Maroto v2.
type MarotoOrdenGenerator struct {
	Comuna string // nombre que encabeza la orden
}

// NewMarotoOrdenGenerator construye el generador.
func NewMarotoOrdenGenerator(comuna string) *MarotoOrdenGenerator {
	return &MarotoOrdenGenerator{Comuna: comuna}
}

// GenerarOrdenPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOrdenGenerator) GenerarOrdenPDF(
	_ context.Context,
	orden *entity.Orden,
	lineas []finanzas.LineaParaPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden "+orden.Numero, true).
		WithAuthor(g.Comuna, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.Comuna, orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proveedorRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(lineas))

	if orden.Observaciones != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+orden.Observaciones, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(8))
	m.AddRows(firmasRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: comuna y título (izq), número + fecha + estado (der).
func headerRow(comuna string, orden *entity.Orden) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(comuna, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Orden de pago", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(orden.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+orden.Fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Estado: "+orden.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// proveedorRow: datos del proveedor destinatario.
func proveedorRow(orden *entity.Orden) core.Row {
	nombre := orden.ProveedorNombre
	if nombre == "" {
		nombre = "—"
	}
	cuit := orden.ProveedorCUIT
	if cuit == "" {
		cuit = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   CUIT: %s", nombre, cuit), props.Text{
				Size: 9, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descripción", 5, align.Left),
		h("Categoría", 3, align.Left),
		h("Área", 2, align.Left),
		h("Monto", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea de la orden.
func tableDetailRows(lineas []finanzas.LineaParaPDF) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		descripcion := l.Descripcion
		if l.BeneficiarioNombre != "" {
			descripcion += " (" + l.BeneficiarioNombre + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				l.CategoriaNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.AreaNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMonto(l.Monto.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la orden alineado a la derecha.
func totalRow(lineas []finanzas.LineaParaPDF) core.Row {
	total := entityTotal(lineas)
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New("$"+formatMonto(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// firmasRow: espacios de firma de quien elaboró y quien autorizó.
func firmasRow() core.Row {
	firma := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1, Color: colorGray,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		)
	}
	return row.New(14).Add(firma("Elaboró"), firma("Autorizó"))
}

func entityTotal(lineas []finanzas.LineaParaPDF) string {
	total := entity.TotalLineas(toEntityLineas(lineas))
	return total.StringFixed(2)
}

func toEntityLineas(lineas []finanzas.LineaParaPDF) []*entity.OrdenLinea {
	out := make([]*entity.OrdenLinea, 0, len(lineas))
	for i := range lineas {
		out = append(out, &lineas[i].OrdenLinea)
	}
	return out
}

// formatMonto inserta puntos de miles en la parte entera de un string
// numérico con dos decimales. Ej: "25000.00" → "25.000,00"
func formatMonto(s string) string {
	entera, decimales := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			entera, decimales = s[:i], s[i+1:]
			break
		}
	}
	n := len(entera)
	buf := make([]byte, 0, n+n/3+3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 && entera[i-1] != '-' {
			buf = append(buf, '.')
		}
		buf = append(buf, entera[i])
	}
	if decimales != "" {
		buf = append(buf, ',')
		buf = append(buf, decimales...)
	}
	return string(buf)
}
