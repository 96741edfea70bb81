package postgres

import (
	"context"
	"fmt"

	"github.com/bvanacker/bestelportaal-api/internal/domain"
	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implements the PaymentRepository port on PostgreSQL (usable
// with pool or tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository builds the persistence adapter for payments. Pass
// pool or tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserts a payment record.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (payment_date, amount_paid, approved, processed, amount_owed, buyer_id, order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		payment.Date, payment.AmountPaid, payment.Approved, payment.Processed,
		payment.AmountOwed, payment.BuyerID, payment.OrderID,
	).Scan(&payment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
