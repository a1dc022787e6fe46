// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Concesionario  │  N° Recibo + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Nombre + DNI                                    │
//	│  VENDEDOR: Nombre                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHÍCULO: Descripción + Placa                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIO DE VENTA                                            │
//	│  NOTAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	appsales "github.com/tu-usuario/concesionario-pro/internal/application/sales"
	"github.com/tu-usuario/concesionario-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appsales.SaleReceiptGenerator = (*MarotoSaleReceipt)(nil)

// MarotoSaleReceipt implementa sales.SaleReceiptGenerator usando Maroto v2.
type MarotoSaleReceipt struct{}

// NewMarotoSaleReceipt construye el generador.
func NewMarotoSaleReceipt() *MarotoSaleReceipt { return &MarotoSaleReceipt{} }

// GenerateReceipt genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoSaleReceipt) GenerateReceipt(_ context.Context, sale *entity.SaleDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venta", true).
		WithAuthor(nonEmpty(sale.DealershipName, "Concesionario"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(sale))
	m.AddRows(sellerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(vehicleRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(priceRow(sale))
	if sale.Notes != "" {
		m.AddRows(notesRow(sale))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: concesionario (izq) y número de recibo + fecha (der).
func headerRow(sale *entity.SaleDetail) core.Row {
	fecha := formatDate(sale.SaleDate)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(sale.DealershipName, "Concesionario"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta de vehículo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("V-%05d", sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: datos del comprador.
func buyerRow(sale *entity.SaleDetail) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("DNI: "+nonEmpty(sale.CustomerDNI, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// sellerRow: datos del vendedor.
func sellerRow(sale *entity.SaleDetail) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sale.SellerName, "-"), props.Text{Size: 9, Top: 6}),
		),
	)
}

// vehicleRow: descripción y placa del vehículo vendido.
func vehicleRow(sale *entity.SaleDetail) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.VehicleText, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Placa: "+nonEmpty(sale.VehiclePlate, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// priceRow: precio de venta destacado a la derecha.
func priceRow(sale *entity.SaleDetail) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("PRECIO DE VENTA:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(sale.Price.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// notesRow: notas de la venta (solo si existen).
func notesRow(sale *entity.SaleDetail) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("NOTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// footerRow: leyenda de cierre.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo acredita la venta del vehículo descrito. "+
				"Conserve este documento como soporte de la operación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate formatea la fecha de venta; "-" si no hay fecha, igual que el
// resto de los textos de respaldo de la app.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
