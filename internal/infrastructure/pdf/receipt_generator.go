// Package pdf genera el recibo del pedido (comprobante de compra) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Pedido + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + email  /  VENDEDOR asignado               │
//	│  ENTREGA: Dirección + número                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + estado del pedido y del pago                        │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apporders "github.com/jhoicas/delivery-api/internal/application/orders"
	"github.com/jhoicas/delivery-api/internal/domain/entity"
	"github.com/jhoicas/delivery-api/internal/domain/repository"
)

var _ apporders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 68}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos en moneda local (separador de miles, dos decimales).
var printer = message.NewPrinter(language.BrazilianPortuguese)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	if storeName == "" {
		storeName = "Delivery App"
	}
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	order *entity.Order,
	customer *entity.User,
	seller *entity.User,
	lines []*repository.LineWithProduct,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(customer, seller))
	m.AddRows(deliveryRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y número de pedido + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.SaleDate.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente y vendedor asignado.
func partiesRow(customer, seller *entity.User) core.Row {
	customerName, customerEmail := "—", "—"
	if customer != nil {
		customerName, customerEmail = customer.Name, customer.Email
	}
	sellerName := "—"
	if seller != nil {
		sellerName = seller.Name
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(customerEmail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sellerName, props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
	)
}

// deliveryRow: dirección de entrega.
func deliveryRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, %s", order.DeliveryAddress, order.DeliveryNumber),
				props.Text{Size: 9, Top: 6}),
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
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del pedido, con el precio capturado.
func tableLineRows(lines []*repository.LineWithProduct) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Line.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(l.Line.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(l.Line.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total a pagar y estados actuales.
func totalsRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Pago: %s", order.Status, order.PaymentStatus),
				props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("TOTAL A PAGAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(formatMoney(order.TotalPrice), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 6,
			}),
		),
	)
}

// formatMoney formatea el monto con separadores locales: "R$ 1.234,56".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}

// shortID primer bloque del UUID, suficiente como referencia visible.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
