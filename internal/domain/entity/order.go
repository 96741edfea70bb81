package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase from a buyer company at a supplier company. Clients
// only ever see the UUID; the numeric ID stays internal.
type Order struct {
	ID            int64
	UUID          string
	Amount        decimal.Decimal
	OrderDate     time.Time
	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	Street        string
	Number        int
	PostalCode    int
	City          string
	BuyerID       int64
	SupplierID    int64
}

// OrderLine is one product position of an order, created together with the
// order and immutable afterwards.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

// Product is a supplier catalogue item.
type Product struct {
	ID        int64
	Name      string
	Stock     int
	UnitPrice decimal.Decimal
}

// Payment records a single payment event against an order. AmountOwed is a
// snapshot of the order amount at creation time; the order itself is never
// mutated by a payment.
type Payment struct {
	ID         int64
	Date       time.Time
	AmountPaid decimal.Decimal
	Approved   bool
	Processed  bool
	AmountOwed decimal.Decimal
	BuyerID    int64
	OrderID    int64
}
