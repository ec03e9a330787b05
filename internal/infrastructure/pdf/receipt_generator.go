// Package pdf genera el recibo imprimible de una venta para el back-office.
package pdf

import (
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

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

var (
	colorBrand = &props.Color{Red: 93, Green: 64, Blue: 55}
	colorMuted = &props.Color{Red: 120, Green: 120, Blue: 120}
)

// ReceiptGenerator genera el recibo de una venta usando Maroto v2.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator construye el generador con el nombre del local.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// Generate genera el PDF del recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBrand, Thickness: 0.5}))
	m.AddRows(itemsHeaderRow())
	for _, it := range sale.Items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorMuted, Thickness: 0.3}))
	m.AddRows(totalsRows(sale)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow nombre del local, cliente y fecha.
func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorBrand}),
			text.New("Cliente: "+sale.CustomerName, props.Text{Size: 9, Top: 8, Color: colorMuted}),
		),
		col.New(5).Add(
			text.New("Recibo #"+sale.ID, props.Text{Size: 9, Align: align.Right}),
			text.New(sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 9, Top: 5, Align: align.Right, Color: colorMuted}),
		),
	)
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(2, "Cant."),
		headerCell(5, "Producto"),
		headerCell(2, "P.Unit"),
		headerCell(3, "Subtotal"),
	)
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorBrand}),
	)
}

func itemRow(it entity.SaleItem) core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8})),
		col.New(5).Add(text.New(it.ProductName, props.Text{Size: 8})),
		col.New(2).Add(text.New(it.UnitPrice.StringFixed(2), props.Text{Size: 8})),
		col.New(3).Add(text.New(it.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

func totalsRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		totalRow("Subtotal", sale.Subtotal.StringFixed(2), false),
	}
	if !sale.Discount.IsZero() {
		rows = append(rows, totalRow("Descuento", "-"+sale.Discount.StringFixed(2), false))
	}
	rows = append(rows, totalRow("TOTAL", sale.Total.StringFixed(2), true))
	return rows
}

func totalRow(label, amount string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(9).Add(text.New(label, props.Text{Size: 9, Style: style, Align: align.Right})),
		col.New(3).Add(text.New(amount, props.Text{Size: 9, Style: style, Align: align.Right})),
	)
}

func footerRow(sale *entity.Sale) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Estado: "+sale.Status, props.Text{Size: 8, Color: colorMuted}),
			text.New("¡Gracias por su visita!", props.Text{Size: 8, Top: 4, Align: align.Center, Color: colorBrand}),
		),
	)
}
