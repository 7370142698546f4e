package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-cobros/internal/domain/entity"
	"github.com/jhoicas/isp-cobros/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un abonado por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	const query = `
		SELECT id, isp_id, COALESCE(code, ''), first_names, COALESCE(last_names, ''),
		       phone, address, email, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	var phone, address, email *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ISPID, &c.Code, &c.FirstNames, &c.LastNames,
		&phone, &address, &email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Phone = derefStr(phone)
	c.Address = derefStr(address)
	c.Email = derefStr(email)
	return &c, nil
}
