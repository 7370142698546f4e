package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

var _ repository.CollectionRepository = (*CollectionRepo)(nil)

// CollectionRepo consultas de solo lectura para el reporte de cobros.
type CollectionRepo struct {
	q Querier
}

// NewCollectionRepository construye el adaptador de reportes.
func NewCollectionRepository(q Querier) *CollectionRepo {
	return &CollectionRepo{q: q}
}

// ListCollections pagos del período con el nombre del abonado resuelto.
// Los pagos anulados no se incluyen.
func (r *CollectionRepo) ListCollections(
	ctx context.Context,
	ispID string,
	from, to time.Time,
) ([]repository.CollectionRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.number,
	    p.paid_at,
	    COALESCE(c.code, c.id::TEXT)                                  AS customer_code,
	    TRIM(c.first_names || ' ' || COALESCE(c.last_names, ''))     AS customer_name,
	    p.method,
	    COALESCE(p.cashier_name, '')                                  AS cashier_name,
	    p.amount
	FROM payments p
	JOIN customers c ON c.id = p.customer_id
	WHERE p.isp_id = $1
	  AND p.paid_at BETWEEN $2 AND $3
	  AND p.voided_at IS NULL
	ORDER BY p.paid_at, p.number`

	rows, err := r.q.Query(ctx, query, ispID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []repository.CollectionRow
	for rows.Next() {
		var row repository.CollectionRow
		if err := rows.Scan(
			&row.PaymentID, &row.Number, &row.PaidAt,
			&row.CustomerCode, &row.CustomerName,
			&row.Method, &row.CashierName, &row.Amount,
		); err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
