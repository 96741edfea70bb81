package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

// OrderScope restricts a query to the orders visible to a session: buyers
// see orders where their company buys, suppliers where it supplies.
type OrderScope struct {
	Role      string
	CompanyID int64
}

// OrderFilter is the full filter surface of the order listing. Search is
// OR-combined over UUID substring, exact amount and status labels; all
// other fields AND-combine.
type OrderFilter struct {
	Scope         OrderScope
	UUIDContains  string
	Amount        *decimal.Decimal
	OrderStatus   *entity.OrderStatus
	PaymentStatus *entity.PaymentStatus
	From          *time.Time
	To            *time.Time
	Search        string
	SortField     string // bedrag, datum, bestellingstatus, betaalstatus, id
	SortAsc       bool
	Page          int
	PageSize      int
}

// OrderRepository data access for orders.
type OrderRepository interface {
	List(filter OrderFilter) ([]*entity.Order, error)
	Count(filter OrderFilter) (int, error)

	// FindScoped resolves an order by case-insensitive partial UUID
	// within the scope. Returns nil when no order matches for that
	// scope, indistinguishable from a nonexistent UUID.
	FindScoped(partialUUID string, scope OrderScope) (*entity.Order, error)

	// FindByUUID resolves an order by partial UUID without scoping.
	FindByUUID(partialUUID string) (*entity.Order, error)

	GetByID(id int64) (*entity.Order, error)
}

// OrderLineWithProduct joins an order line with its product's display
// data.
type OrderLineWithProduct struct {
	entity.OrderLine
	Name      string
	Stock     int
	UnitPrice decimal.Decimal
}

// OrderLineRepository data access for order lines.
type OrderLineRepository interface {
	ListByOrder(orderID int64) ([]*OrderLineWithProduct, error)
}

// ProductRepository data access for the public product catalogue.
type ProductRepository interface {
	List(search string, limit, offset int) ([]*entity.Product, error)
	Count(search string) (int, error)
}

// PaymentRepository data access for payments.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
}
