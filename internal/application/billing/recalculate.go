package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/domain"
	"github.com/jhoicas/isp-cobros/internal/domain/invoicing"
)

// MaxLines límite de líneas por factura.
const MaxLines = 200

// RecalculateUseCase recalcula subtotal, impuesto y total de una factura
// antes de emitirla o al corregir un cargo.
type RecalculateUseCase struct{}

// NewRecalculateUseCase construye el caso de uso.
func NewRecalculateUseCase() *RecalculateUseCase { return &RecalculateUseCase{} }

// Recalculate valida las líneas y devuelve los totales.
func (uc *RecalculateUseCase) Recalculate(_ context.Context, in dto.RecalculateInvoiceRequest) (*dto.RecalculateInvoiceResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: la factura debe tener al menos una línea", domain.ErrInvalidInput)
	}
	if len(in.Lines) > MaxLines {
		return nil, fmt.Errorf("%w: máximo %d líneas", domain.ErrInvalidInput, MaxLines)
	}
	for i, l := range in.Lines {
		if l.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: línea %d sin cantidad", domain.ErrInvalidInput, i+1)
		}
	}
	totals, err := invoicing.Recalculate(in.Lines)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
