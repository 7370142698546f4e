package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
		id, isp_id, customer_id, number, COALESCE(description, ''),
		period_start, period_end, net_total, tax_total, grand_total, paid_total,
		status, issued_at, due_date, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.ISPID, &inv.CustomerID, &inv.Number, &inv.Description,
		&inv.PeriodStart, &inv.PeriodEnd, &inv.NetTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Paid,
		&inv.Status, &inv.IssuedAt, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetByIDs obtiene varias facturas en una sola consulta y las devuelve en el
// orden de ids.
func (r *InvoiceRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Invoice, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.Invoice, len(ids))
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		byID[inv.ID] = inv
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return orderByIDs(ids, byID), nil
}

// orderByIDs respeta el orden solicitado; los ids sin fila se omiten.
func orderByIDs(ids []string, byID map[string]*entity.Invoice) []*entity.Invoice {
	out := make([]*entity.Invoice, 0, len(byID))
	for _, id := range ids {
		if inv, ok := byID[id]; ok {
			out = append(out, inv)
			delete(byID, id)
		}
	}
	return out
}
