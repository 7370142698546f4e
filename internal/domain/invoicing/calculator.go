// Package invoicing recalcula los totales de una factura a partir de sus líneas.
package invoicing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-cobros/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Line línea de factura. TaxRate admite porcentaje (18) o fracción (0.18).
type Line struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// LineTotal línea con sus importes calculados. TaxRate queda como fracción.
type LineTotal struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Totals resultado del recálculo.
type Totals struct {
	Lines      []LineTotal     `json:"lines"`
	NetTotal   decimal.Decimal `json:"net_total"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// NormalizeTaxRate convierte una tasa expresada en porcentaje (> 1) a fracción.
func NormalizeTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(one) {
		return rate.Div(hundred)
	}
	return rate
}

// Recalculate calcula subtotal = cantidad × precio e impuesto = subtotal × tasa,
// redondeando cada importe a 2 decimales por línea antes de acumular.
// Las líneas sin ID reciben uno nuevo.
func Recalculate(lines []Line) (Totals, error) {
	out := Totals{
		Lines:      make([]LineTotal, 0, len(lines)),
		NetTotal:   decimal.Zero,
		TaxTotal:   decimal.Zero,
		GrandTotal: decimal.Zero,
	}
	for i, l := range lines {
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() || l.TaxRate.IsNegative() {
			return Totals{}, fmt.Errorf("%w: línea %d con valores negativos", domain.ErrInvalidInput, i+1)
		}
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		rate := NormalizeTaxRate(l.TaxRate)
		subtotal := l.Quantity.Mul(l.UnitPrice).Round(2)
		tax := subtotal.Mul(rate).Round(2)
		total := subtotal.Add(tax)

		out.Lines = append(out.Lines, LineTotal{
			ID:          id,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     rate,
			Subtotal:    subtotal,
			Tax:         tax,
			Total:       total,
		})
		out.NetTotal = out.NetTotal.Add(subtotal)
		out.TaxTotal = out.TaxTotal.Add(tax)
	}
	out.GrandTotal = out.NetTotal.Add(out.TaxTotal)
	return out, nil
}
