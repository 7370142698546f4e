package invoicing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/invoicing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNormalizeTaxRate(t *testing.T) {
	assert.True(t, invoicing.NormalizeTaxRate(d("18")).Equal(d("0.18")), "18 es porcentaje")
	assert.True(t, invoicing.NormalizeTaxRate(d("0.18")).Equal(d("0.18")), "0.18 ya es fracción")
	assert.True(t, invoicing.NormalizeTaxRate(d("1")).Equal(d("1")), "1 se toma como fracción")
	assert.True(t, invoicing.NormalizeTaxRate(decimal.Zero).IsZero())
}

func TestRecalculate_PlanMensualConITBIS(t *testing.T) {
	totals, err := invoicing.Recalculate([]invoicing.Line{
		{ID: "plan", Description: "Internet 50 Mbps", Quantity: d("1"), UnitPrice: d("1500"), TaxRate: d("18")},
		{ID: "ip", Description: "IP fija", Quantity: d("2"), UnitPrice: d("125.50"), TaxRate: d("0.18")},
	})
	require.NoError(t, err)
	require.Len(t, totals.Lines, 2)

	assert.Equal(t, "1500.00", totals.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "270.00", totals.Lines[0].Tax.StringFixed(2))
	assert.Equal(t, "251.00", totals.Lines[1].Subtotal.StringFixed(2))
	assert.Equal(t, "45.18", totals.Lines[1].Tax.StringFixed(2))

	assert.Equal(t, "1751.00", totals.NetTotal.StringFixed(2))
	assert.Equal(t, "315.18", totals.TaxTotal.StringFixed(2))
	assert.Equal(t, "2066.18", totals.GrandTotal.StringFixed(2))
}

func TestRecalculate_RedondeaPorLinea(t *testing.T) {
	// 3 × 0.335 = 1.005 → 1.01 ; impuesto 1.01 × 0.18 = 0.1818 → 0.18
	totals, err := invoicing.Recalculate([]invoicing.Line{
		{Quantity: d("3"), UnitPrice: d("0.335"), TaxRate: d("18")},
	})
	require.NoError(t, err)
	assert.Equal(t, "1.01", totals.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "0.18", totals.Lines[0].Tax.StringFixed(2))
	assert.Equal(t, "1.19", totals.GrandTotal.StringFixed(2))
}

func TestRecalculate_AsignaIDALineasSinID(t *testing.T) {
	totals, err := invoicing.Recalculate([]invoicing.Line{{Quantity: d("1"), UnitPrice: d("10")}})
	require.NoError(t, err)
	assert.Len(t, totals.Lines[0].ID, 36, "debe asignarse un UUID")
}

func TestRecalculate_SinLineas(t *testing.T) {
	totals, err := invoicing.Recalculate(nil)
	require.NoError(t, err)
	assert.Empty(t, totals.Lines)
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestRecalculate_ValoresNegativos(t *testing.T) {
	_, err := invoicing.Recalculate([]invoicing.Line{{Quantity: d("-1"), UnitPrice: d("10")}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
