// Package pdf implementa la generación de la orden de corte imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código del registro │ Estado + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MODELO: Código + Nombre                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Talla | Cantidad de prendas                          │
//	│  TABLA: Artículo | Consumo/prenda | Talla | Total requerido  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE PRENDAS + Observaciones                            │
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

	appprod "github.com/jmcastro/textil-api/internal/application/produccion"
	"github.com/jmcastro/textil-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// OrdenCorteGenerator implementa produccion.OrdenCortePDFGenerator usando Maroto v2.
type OrdenCorteGenerator struct{}

// NewOrdenCorteGenerator construye el generador.
func NewOrdenCorteGenerator() *OrdenCorteGenerator { return &OrdenCorteGenerator{} }

var _ appprod.OrdenCortePDFGenerator = (*OrdenCorteGenerator)(nil)

// GenerarOrdenCorte genera el PDF y devuelve sus bytes.
func (g *OrdenCorteGenerator) GenerarOrdenCorte(
	_ context.Context,
	registro *entity.Registro,
	modelo *entity.Modelo,
	lineas []appprod.OrdenCorteLinea,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Corte "+registro.Codigo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(registro))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(modeloRow(modelo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tallasHeaderRow())
	for _, r := range tallasRows(registro) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(materialesHeaderRow())
	for _, r := range materialesRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(registro))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: código del registro (izq) y estado + fecha (der).
func headerRow(registro *entity.Registro) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE CORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(registro.Codigo, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+registro.Estado, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary,
			}),
			text.New("Fecha: "+registro.Fecha.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// modeloRow: referencia del modelo a cortar.
func modeloRow(modelo *entity.Modelo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("MODELO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %s", modelo.Codigo, modelo.Nombre), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func tallasHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Talla", 4, align.Left),
		h("Prendas", 8, align.Left),
	)
}

func tallasRows(registro *entity.Registro) []core.Row {
	result := make([]core.Row, 0, len(registro.Tallas))
	for _, t := range registro.Tallas {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(t.Talla, props.Text{Size: 8, Top: 1})),
			col.New(8).Add(text.New(t.Cantidad.String(), props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

func materialesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 6, align.Left),
		h("Consumo/prenda", 2, align.Right),
		h("Talla", 1, align.Center),
		h("Total requerido", 3, align.Right),
	)
}

func materialesRows(lineas []appprod.OrdenCorteLinea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		talla := "todas"
		if l.Talla != nil {
			talla = *l.Talla
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				fmt.Sprintf("%s — %s", l.ArticuloCodigo, l.ArticuloNombre),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.CantidadPorPrenda.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				talla,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.TotalRequerido.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de prendas y observaciones.
func totalRow(registro *entity.Registro) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(registro.Observaciones, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL DE PRENDAS: "+registro.TotalPrendas().String(), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}
