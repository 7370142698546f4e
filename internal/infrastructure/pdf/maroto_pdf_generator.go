// Package pdf genera la versión PDF del recibo de pago, la que se descarga,
// se comparte por enlace o se adjunta al historial del abonado.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: ISP + contacto  │  N° Recibo + Fecha │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Código + Nombre + contacto          │
//	│  PAGO: Método / Cajero / Banco / Referencia   │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Factura | Descripción | Monto | Pagado│
//	│         | Saldo  (+ período si existe)        │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Total pagado / Saldo pendiente      │
//	│  ───────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda         │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ receipts.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa receipts.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
// Los montos usan el formato de moneda indicado en data.ISP.Locale.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(_ context.Context, data receipt.Data) ([]byte, error) {
	money := receipt.LocaleFor(data.ISP.Locale)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Recibo de pago "+data.Receipt.ID, true).
		WithAuthor(nonEmpty(data.ISP.Name, "ISP"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.ISP, data.Receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data.Customer))
	m.AddRows(paymentRows(data.Receipt, money)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Facturas
	m.AddRows(tableHeaderRow())
	for _, r := range invoiceRows(data.Invoices, money) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data, money))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data, money))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: ISP + contacto (izq) y N° de recibo + fecha (der).
func headerRow(isp receipt.ISP, r receipt.Receipt) core.Row {
	contact := joinNonEmpty("  |  ", isp.Address, prefixed("Tel: ", isp.Phone))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(isp.Name, "ISP"), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(contact, receipt.Placeholder), props.Text{
				Size: 7, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+nonEmpty(r.ID, receipt.Placeholder), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+receipt.NormalizeDate(r.Date)+"  "+receipt.NormalizeTime(r.Time), props.Text{
				Size: 7, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del abonado.
func customerRow(c receipt.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.FullName(), receipt.Placeholder), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 5,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Tel: %s   |   Dirección: %s",
				nonEmpty(c.ID, receipt.Placeholder),
				nonEmpty(c.Phone, receipt.Placeholder),
				nonEmpty(c.Address, receipt.Placeholder),
			), props.Text{Size: 7, Top: 11, Color: colorGray}),
		),
	)
}

// paymentRows: método, cajero y datos bancarios si los hay.
func paymentRows(r receipt.Receipt, money receipt.Locale) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New("PAGO", props.Text{
					Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("Método: %s   |   Cajero: %s   |   Monto: %s",
					nonEmpty(r.PaymentMethod, receipt.Placeholder),
					nonEmpty(r.Cashier, receipt.Placeholder),
					money.FormatMoney(r.Total),
				), props.Text{Size: 8, Top: 5}),
			),
		),
	}
	if d := r.Detail; d != nil {
		extra := joinNonEmpty("   |   ",
			prefixed("Banco: ", d.Bank),
			prefixed("Ref.: ", d.Reference),
			prefixed("Cuenta destino: ", d.DestinationAccount),
			prefixed("Titular: ", d.HolderName),
			prefixed("Fecha cheque: ", d.CheckDate),
		)
		if extra != "" {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New(extra, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
			)))
		}
		if note := strings.TrimSpace(d.Note); note != "" {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New("Nota: "+note, props.Text{Size: 7, Color: colorGray, Top: 0.5}),
			)))
		}
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de facturas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Factura", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Monto", 2, align.Right),
		h("Pagado", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

// invoiceRows: una fila por factura y otra con el período cuando se conoce.
func invoiceRows(invoices []receipt.Invoice, money receipt.Locale) []core.Row {
	result := make([]core.Row, 0, len(invoices)*2)
	for _, inv := range invoices {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(6).Add(
			cell(nonEmpty(inv.ID, receipt.Placeholder), 2, align.Left),
			cell(nonEmpty(inv.Description, receipt.Placeholder), 4, align.Left),
			cell(money.FormatMoney(inv.Total), 2, align.Right),
			cell(money.FormatMoney(inv.Paid), 2, align.Right),
			cell(money.FormatMoney(inv.Pending()), 2, align.Right),
		))
		if start, end, ok := receipt.ResolvePeriod(inv); ok {
			result = append(result, row.New(4).Add(
				col.New(2),
				col.New(10).Add(text.New(
					"Período: "+nonEmpty(start, receipt.Placeholder)+" - "+nonEmpty(end, receipt.Placeholder),
					props.Text{Size: 6.5, Color: colorGray, Left: 1},
				)),
			))
		}
	}
	if len(invoices) == 0 {
		result = append(result, row.New(6).Add(col.New(12).Add(
			text.New("Sin facturas asociadas", props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
		)))
	}
	return result
}

// totalsRow: total pagado y saldo pendiente alineados a la derecha.
func totalsRow(data receipt.Data, money receipt.Locale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}
	pendingLabel := text.New("Saldo pendiente:", props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
	})

	return row.New(14).Add(
		col.New(4),
		col.New(4).Add(label("Total pagado:"), pendingLabel),
		col.New(4).Add(
			grandValue(money.FormatMoney(data.Receipt.Total), 0),
			grandValue(money.FormatMoney(data.TotalPending), 6),
		),
	)
}

// footerRow: QR de verificación + agradecimiento.
func footerRow(data receipt.Data, money receipt.Locale) core.Row {
	return row.New(34).Add(
		col.New(4).Add(code.NewQr(qrPayload(data, money), props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("¡Gracias por su pago!", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Este recibo es su comprobante de pago.\nConserve este documento.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// qrPayload contenido del QR: datos mínimos para verificar el recibo en caja.
func qrPayload(data receipt.Data, money receipt.Locale) string {
	return strings.Join([]string{
		"RECIBO:" + data.Receipt.ID,
		"CLIENTE:" + data.Customer.ID,
		"FECHA:" + receipt.NormalizeDate(data.Receipt.Date),
		"TOTAL:" + money.FormatMoney(data.Receipt.Total),
	}, "|")
}

func nonEmpty(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return ""
	}
	return prefix + value
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
