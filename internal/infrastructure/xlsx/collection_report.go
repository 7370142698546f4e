// Package xlsx genera el reporte de cobros en Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
)

const (
	sheetCollections = "Cobros"
	sheetSummary     = "Resumen"
	moneyFormat      = "#,##0.00"
)

var collectionHeaders = []string{"Recibo", "Fecha", "Hora", "Código cliente", "Cliente", "Método", "Cajero", "Monto"}

var _ receipts.ReportWriter = (*CollectionReportWriter)(nil)

// CollectionReportWriter implementa receipts.ReportWriter con excelize.
type CollectionReportWriter struct{}

// NewCollectionReportWriter construye el generador.
func NewCollectionReportWriter() *CollectionReportWriter { return &CollectionReportWriter{} }

// WriteCollections escribe una hoja con el detalle de cobros y otra con el
// resumen por método de pago.
func (w *CollectionReportWriter) WriteCollections(_ context.Context, report receipts.CollectionReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCollections); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(moneyFormat)})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de montos: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: ptr(moneyFormat),
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de totales: %w", err)
	}
	// Etiquetas y conteos del total: negrita sin formato de moneda.
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de etiquetas: %w", err)
	}

	// ── Detalle ───────────────────────────────────────────────────────────────
	for i, h := range collectionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetCollections, cell, h)
		_ = f.SetCellStyle(sheetCollections, cell, cell, headerStyle)
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetCollections, colName, colName, columnWidth(h))
	}

	rowNum := 2
	for _, r := range report.Rows {
		values := []any{
			r.Number,
			r.PaidAt.Format("02/01/2006"),
			r.PaidAt.Format("15:04"),
			r.CustomerCode,
			r.CustomerName,
			receipts.MethodLabel(r.Method),
			r.CashierName,
			r.Amount.InexactFloat64(),
		}
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheetCollections, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
		}
		amountCell, _ := excelize.CoordinatesToCellName(len(values), rowNum)
		_ = f.SetCellStyle(sheetCollections, amountCell, amountCell, moneyStyle)
		rowNum++
	}

	labelCell, _ := excelize.CoordinatesToCellName(len(collectionHeaders)-1, rowNum)
	totalCell, _ := excelize.CoordinatesToCellName(len(collectionHeaders), rowNum)
	_ = f.SetCellValue(sheetCollections, labelCell, "TOTAL")
	_ = f.SetCellValue(sheetCollections, totalCell, report.Total.InexactFloat64())
	_ = f.SetCellStyle(sheetCollections, labelCell, labelCell, labelStyle)
	_ = f.SetCellStyle(sheetCollections, totalCell, totalCell, totalStyle)

	// ── Resumen ───────────────────────────────────────────────────────────────
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	_ = f.SetCellValue(sheetSummary, "A1", report.ISPName)
	_ = f.SetCellValue(sheetSummary, "A2", fmt.Sprintf("Cobros del %s al %s",
		report.From.Format("02/01/2006"), report.To.Format("02/01/2006")))
	_ = f.SetColWidth(sheetSummary, "A", "A", 24)
	_ = f.SetColWidth(sheetSummary, "B", "C", 16)

	for i, h := range []string{"Método", "Cantidad", "Monto"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		_ = f.SetCellValue(sheetSummary, cell, h)
		_ = f.SetCellStyle(sheetSummary, cell, cell, headerStyle)
	}
	rowNum = 5
	for _, m := range report.ByMethod {
		_ = f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", rowNum), m.Method)
		_ = f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", rowNum), m.Count)
		_ = f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", rowNum), m.Amount.InexactFloat64())
		_ = f.SetCellStyle(sheetSummary, fmt.Sprintf("C%d", rowNum), fmt.Sprintf("C%d", rowNum), moneyStyle)
		rowNum++
	}
	_ = f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", rowNum), "TOTAL")
	_ = f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", rowNum), len(report.Rows))
	_ = f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", rowNum), report.Total.InexactFloat64())
	_ = f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("B%d", rowNum), labelStyle)
	_ = f.SetCellStyle(sheetSummary, fmt.Sprintf("C%d", rowNum), fmt.Sprintf("C%d", rowNum), totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidth(header string) float64 {
	switch header {
	case "Cliente":
		return 32
	case "Código cliente", "Método", "Cajero":
		return 18
	default:
		return 12
	}
}

func ptr[T any](v T) *T { return &v }
