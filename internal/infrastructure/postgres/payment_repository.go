package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// GetByID obtiene un pago con su detalle bancario.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	const query = `
		SELECT id, isp_id, customer_id, number, paid_at, amount, method,
		       COALESCE(cashier_name, ''), COALESCE(bank, ''), COALESCE(reference, ''),
		       COALESCE(destination_account, ''), COALESCE(holder_name, ''),
		       check_date, COALESCE(note, ''), created_at
		FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ISPID, &p.CustomerID, &p.Number, &p.PaidAt, &p.Amount, &p.Method,
		&p.CashierName, &p.Bank, &p.Reference,
		&p.DestinationAccount, &p.HolderName,
		&p.CheckDate, &p.Note, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListApplications devuelve las aplicaciones del pago en orden de registro.
func (r *PaymentRepo) ListApplications(ctx context.Context, paymentID string) ([]entity.PaymentApplication, error) {
	const query = `
		SELECT payment_id, invoice_id, amount
		FROM payment_applications WHERE payment_id = $1
		ORDER BY position, invoice_id`
	rows, err := r.q.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment applications: %w", err)
	}
	defer rows.Close()
	var list []entity.PaymentApplication
	for rows.Next() {
		var a entity.PaymentApplication
		if err := rows.Scan(&a.PaymentID, &a.InvoiceID, &a.Amount); err != nil {
			return nil, fmt.Errorf("scan payment application: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
