package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, uuid, amount, order_date, order_status, payment_status, street, number, postal_code, city, buyer_id, supplier_id`

// OrderRepo implements the OrderRepository port on PostgreSQL (usable with
// pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders. Pass pool
// or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// scopeClause restricts to the company's side of the order. Sessions
// without a buyer/supplier role (administrators) get no restriction.
func scopeClause(scope repository.OrderScope, args *[]any) string {
	switch scope.Role {
	case entity.RoleBuyer:
		*args = append(*args, scope.CompanyID)
		return fmt.Sprintf("buyer_id = $%d", len(*args))
	case entity.RoleSupplier:
		*args = append(*args, scope.CompanyID)
		return fmt.Sprintf("supplier_id = $%d", len(*args))
	}
	return ""
}

// searchClause builds the OR group for the free-text search: UUID
// substring always, exact amount only when the term is numeric, status
// equality only when the term is a known label.
func searchClause(search string, args *[]any) string {
	if search == "" {
		return ""
	}
	var terms []string

	*args = append(*args, "%"+search+"%")
	terms = append(terms, fmt.Sprintf("uuid ILIKE $%d", len(*args)))

	if amount, err := decimal.NewFromString(search); err == nil {
		*args = append(*args, amount)
		terms = append(terms, fmt.Sprintf("amount = $%d", len(*args)))
	}
	if code, ok := entity.ParseOrderStatus(search); ok {
		*args = append(*args, int(code))
		terms = append(terms, fmt.Sprintf("order_status = $%d", len(*args)))
	}
	if code, ok := entity.ParsePaymentStatus(search); ok {
		*args = append(*args, int(code))
		terms = append(terms, fmt.Sprintf("payment_status = $%d", len(*args)))
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// buildOrderWhere combines scope, search and the explicit filters into one
// WHERE clause. Everything outside the search group AND-combines.
func buildOrderWhere(f repository.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if c := scopeClause(f.Scope, &args); c != "" {
		conds = append(conds, c)
	}
	if c := searchClause(f.Search, &args); c != "" {
		conds = append(conds, c)
	}
	if f.UUIDContains != "" {
		args = append(args, "%"+f.UUIDContains+"%")
		conds = append(conds, fmt.Sprintf("uuid ILIKE $%d", len(args)))
	}
	if f.Amount != nil {
		args = append(args, *f.Amount)
		conds = append(conds, fmt.Sprintf("amount = $%d", len(args)))
	}
	if f.OrderStatus != nil {
		args = append(args, int(*f.OrderStatus))
		conds = append(conds, fmt.Sprintf("order_status = $%d", len(args)))
	}
	if f.PaymentStatus != nil {
		args = append(args, int(*f.PaymentStatus))
		conds = append(conds, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("order_date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("order_date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// sortColumns whitelists the sortable fields; anything else falls back to
// the default order-date-descending sort.
var sortColumns = map[string]string{
	"bedrag":           "amount",
	"datum":            "order_date",
	"bestellingstatus": "order_status",
	"betaalstatus":     "payment_status",
	"id":               "uuid",
}

func orderByClause(f repository.OrderFilter) string {
	col, ok := sortColumns[f.SortField]
	if !ok {
		return " ORDER BY order_date DESC"
	}
	dir := "ASC"
	if !f.SortAsc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// List returns one page of orders matching the filter.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	where, args := buildOrderWhere(f)
	query := `SELECT ` + orderColumns + ` FROM orders` + where + orderByClause(f)

	args = append(args, f.PageSize)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Page*f.PageSize)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Count returns the total number of orders matching the filter, ignoring
// pagination.
func (r *OrderRepo) Count(f repository.OrderFilter) (int, error) {
	where, args := buildOrderWhere(f)
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orders`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// FindScoped resolves an order by partial UUID within the session scope.
func (r *OrderRepo) FindScoped(partialUUID string, scope repository.OrderScope) (*entity.Order, error) {
	args := []any{"%" + partialUUID + "%"}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE uuid ILIKE $1`
	if c := scopeClause(scope, &args); c != "" {
		query += " AND " + c
	}
	query += " LIMIT 1"

	o, err := scanOrder(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

// FindByUUID resolves an order by partial UUID without scope.
func (r *OrderRepo) FindByUUID(partialUUID string) (*entity.Order, error) {
	return r.FindScoped(partialUUID, repository.OrderScope{})
}

// GetByID fetches an order by internal id.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.UUID, &o.Amount, &o.OrderDate, &o.OrderStatus, &o.PaymentStatus,
		&o.Street, &o.Number, &o.PostalCode, &o.City, &o.BuyerID, &o.SupplierID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
