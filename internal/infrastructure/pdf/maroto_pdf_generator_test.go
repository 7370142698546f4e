package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

func sampleReceiptData() receipt.Data {
	return receipt.NewData(
		receipt.Receipt{
			ID:            "000123",
			Date:          "2025-03-15",
			Time:          "14:30",
			Total:         decimal.NewFromInt(1000),
			PaymentMethod: "Transferencia",
			Cashier:       "Ana",
			Detail:        &receipt.PaymentDetail{Bank: "Banco Popular", Reference: "TRX-99"},
		},
		receipt.Customer{ID: "C-001", FirstNames: "Juan", LastNames: "Pérez", Phone: "809-555-0101"},
		[]receipt.Invoice{
			{
				ID: "F-1", Description: "Internet 20 Mbps",
				Total: decimal.NewFromInt(1000), Paid: decimal.NewFromInt(400),
				PeriodFields: receipt.PeriodFields{PeriodStart: "2025-03-01", PeriodEnd: "2025-03-31"},
			},
		},
		receipt.ISP{Name: "FibraNet", Phone: "809-555-0000", Address: "Av. Principal 1", Locale: "es-DO"},
	)
}

func TestGenerateReceiptPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()

	b, err := g.GenerateReceiptPDF(context.Background(), sampleReceiptData())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestGenerateReceiptPDF_SinFacturasNiDetalle(t *testing.T) {
	data := receipt.NewData(receipt.Receipt{ID: "1", Total: decimal.NewFromInt(50)}, receipt.Customer{}, nil, receipt.ISP{})

	b, err := NewMarotoPDFGenerator().GenerateReceiptPDF(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestQRPayload(t *testing.T) {
	got := qrPayload(sampleReceiptData(), receipt.LocaleDO)
	assert.Equal(t, "RECIBO:000123|CLIENTE:C-001|FECHA:15/03/2025|TOTAL:RD$1,000.00", got)
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | Tel: 1", joinNonEmpty(" | ", "a", prefixed("Tel: ", "1"), prefixed("X: ", "  ")))
	assert.Equal(t, "", joinNonEmpty(" | "))
}
