package receipts

import (
	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// Formatos con los que se entregan fechas y horas al formateador.
const (
	isoDate   = "2006-01-02"
	clockTime = "15:04"
)

var methodLabels = map[string]string{
	entity.PaymentMethodCash:     "Efectivo",
	entity.PaymentMethodTransfer: "Transferencia",
	entity.PaymentMethodDeposit:  "Depósito",
	entity.PaymentMethodCheck:    "Cheque",
	entity.PaymentMethodCard:     "Tarjeta",
}

// MethodLabel nombre visible del método de pago.
func MethodLabel(method string) string {
	if l, ok := methodLabels[method]; ok {
		return l
	}
	return method
}

func toReceipt(p *entity.Payment) receipt.Receipt {
	number := p.Number
	if number == "" {
		number = p.ID
	}
	r := receipt.Receipt{
		ID:            number,
		Total:         p.Amount,
		PaymentMethod: MethodLabel(p.Method),
		Cashier:       p.CashierName,
	}
	if !p.PaidAt.IsZero() {
		r.Date = p.PaidAt.Format(isoDate)
		r.Time = p.PaidAt.Format(clockTime)
	}

	detail := receipt.PaymentDetail{
		Bank:               p.Bank,
		Reference:          p.Reference,
		DestinationAccount: p.DestinationAccount,
		HolderName:         p.HolderName,
		Note:               p.Note,
	}
	if p.CheckDate != nil {
		detail.CheckDate = p.CheckDate.Format(isoDate)
	}
	if detail != (receipt.PaymentDetail{}) {
		r.Detail = &detail
	}
	return r
}

func toCustomer(id string, c *entity.Customer) receipt.Customer {
	if c == nil {
		return receipt.Customer{ID: id}
	}
	code := c.Code
	if code == "" {
		code = c.ID
	}
	return receipt.Customer{
		ID:         code,
		FirstNames: c.FirstNames,
		LastNames:  c.LastNames,
		Phone:      c.Phone,
		Address:    c.Address,
		Email:      c.Email,
	}
}

func toInvoices(list []*entity.Invoice) []receipt.Invoice {
	out := make([]receipt.Invoice, 0, len(list))
	for _, inv := range list {
		if inv == nil {
			continue
		}
		number := inv.Number
		if number == "" {
			number = inv.ID
		}
		ri := receipt.Invoice{
			ID:          number,
			Description: inv.Description,
			Total:       inv.GrandTotal,
			Paid:        inv.Paid,
		}
		if inv.PeriodStart != nil {
			ri.PeriodStart = receipt.FlexString(inv.PeriodStart.Format(isoDate))
		}
		if inv.PeriodEnd != nil {
			ri.PeriodEnd = receipt.FlexString(inv.PeriodEnd.Format(isoDate))
		}
		out = append(out, ri)
	}
	return out
}
