package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-cobros/internal/application/billing"
	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/invoicing"
)

func TestRecalculate_OK(t *testing.T) {
	uc := billing.NewRecalculateUseCase()
	out, err := uc.Recalculate(context.Background(), dto.RecalculateInvoiceRequest{
		Lines: []invoicing.Line{
			{Description: "Plan 100 Mbps", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("2000"), TaxRate: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2360.00", out.GrandTotal.StringFixed(2))
}

func TestRecalculate_Validaciones(t *testing.T) {
	uc := billing.NewRecalculateUseCase()

	_, err := uc.Recalculate(context.Background(), dto.RecalculateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	_, err = uc.Recalculate(context.Background(), dto.RecalculateInvoiceRequest{
		Lines: []invoicing.Line{{Description: "x", UnitPrice: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	lines := make([]invoicing.Line, billing.MaxLines+1)
	_, err = uc.Recalculate(context.Background(), dto.RecalculateInvoiceRequest{Lines: lines})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "demasiadas líneas")
}
