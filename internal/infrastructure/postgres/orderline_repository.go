package postgres

import (
	"context"
	"fmt"

	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.OrderLineRepository = (*OrderLineRepo)(nil)

// OrderLineRepo implements the OrderLineRepository port on PostgreSQL
// (usable with pool or tx).
type OrderLineRepo struct {
	q Querier
}

// NewOrderLineRepository builds the persistence adapter for order lines.
// Pass pool or tx (Querier).
func NewOrderLineRepository(q Querier) *OrderLineRepo {
	return &OrderLineRepo{q: q}
}

// ListByOrder returns the lines of an order joined with the product's
// name, stock and unit price.
func (r *OrderLineRepo) ListByOrder(orderID int64) ([]*repository.OrderLineWithProduct, error) {
	query := `
		SELECT l.id, l.order_id, l.product_id, l.quantity, p.name, p.stock, p.unit_price
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = $1 ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	var list []*repository.OrderLineWithProduct
	for rows.Next() {
		var l repository.OrderLineWithProduct
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.Name, &l.Stock, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
