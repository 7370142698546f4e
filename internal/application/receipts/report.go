package receipts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

// CollectionReport cobros de un ISP en un rango de fechas.
type CollectionReport struct {
	ISPName  string
	From     time.Time
	To       time.Time
	Rows     []repository.CollectionRow
	ByMethod []MethodTotal
	Total    decimal.Decimal
}

// MethodTotal total cobrado por método de pago.
type MethodTotal struct {
	Method string
	Count  int
	Amount decimal.Decimal
}

// CollectionReport genera el reporte de cobros (xlsx) entre from y to, ambos inclusive.
// Devuelve los bytes del archivo y su nombre.
func (uc *UseCase) CollectionReport(ctx context.Context, ispID string, from, to time.Time) ([]byte, string, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, "", fmt.Errorf("%w: rango de fechas inválido", domain.ErrInvalidInput)
	}
	isp, err := uc.deps.ISPs.GetByID(ctx, ispID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener ISP: %w", err)
	}
	if isp == nil {
		return nil, "", domain.ErrNotFound
	}

	// el día final completo
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
	rows, err := uc.deps.Collections.ListCollections(ctx, ispID, from, end)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar cobros: %w", err)
	}

	report := BuildCollectionReport(isp.Name, from, to, rows)
	data, err := uc.deps.Reports.WriteCollections(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar archivo: %w", err)
	}
	uc.deps.Logger.Info().
		Str("isp_id", ispID).
		Int("rows", len(rows)).
		Str("total", report.Total.StringFixed(2)).
		Msg("reporte de cobros generado")

	filename := fmt.Sprintf("cobros_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return data, filename, nil
}

// BuildCollectionReport totaliza las filas por método de pago (orden alfabético
// de la etiqueta) y en general.
func BuildCollectionReport(ispName string, from, to time.Time, rows []repository.CollectionRow) CollectionReport {
	report := CollectionReport{ISPName: ispName, From: from, To: to, Rows: rows, Total: decimal.Zero}
	byMethod := map[string]*MethodTotal{}
	for _, r := range rows {
		label := MethodLabel(r.Method)
		mt, ok := byMethod[label]
		if !ok {
			mt = &MethodTotal{Method: label, Amount: decimal.Zero}
			byMethod[label] = mt
		}
		mt.Count++
		mt.Amount = mt.Amount.Add(r.Amount)
		report.Total = report.Total.Add(r.Amount)
	}
	for _, mt := range byMethod {
		report.ByMethod = append(report.ByMethod, *mt)
	}
	sort.Slice(report.ByMethod, func(i, j int) bool {
		return report.ByMethod[i].Method < report.ByMethod[j].Method
	})
	return report
}
