package entity

import (
	"golang.org/x/text/cases"
)

// OrderStatus is the fulfilment state of an order (0-5).
type OrderStatus int

const (
	OrderPlaced OrderStatus = iota
	OrderProcessed
	OrderShipped
	OrderOutForDelivery
	OrderDelivered
	OrderCompleted
)

// PaymentStatus is the invoicing state of an order (0-2).
type PaymentStatus int

const (
	PaymentUnprocessed PaymentStatus = iota
	PaymentInvoiceSent
	PaymentPaid
)

// Dutch labels are the external contract; the numeric codes are what is
// stored.
var orderStatusLabels = map[OrderStatus]string{
	OrderPlaced:         "geplaatst",
	OrderProcessed:      "verwerkt",
	OrderShipped:        "verzonden",
	OrderOutForDelivery: "uit voor levering",
	OrderDelivered:      "geleverd",
	OrderCompleted:      "voltooid",
}

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentUnprocessed: "onverwerkt",
	PaymentInvoiceSent: "factuur verzonden",
	PaymentPaid:        "betaald",
}

var fold = cases.Fold()

// Label returns the Dutch label for the status, or "" for unknown codes.
func (s OrderStatus) Label() string {
	return orderStatusLabels[s]
}

// Label returns the Dutch label for the status, or "" for unknown codes.
func (s PaymentStatus) Label() string {
	return paymentStatusLabels[s]
}

// ParseOrderStatus maps a label back to its code, case-insensitively.
func ParseOrderStatus(label string) (OrderStatus, bool) {
	folded := fold.String(label)
	for code, l := range orderStatusLabels {
		if fold.String(l) == folded {
			return code, true
		}
	}
	return 0, false
}

// ParsePaymentStatus maps a label back to its code, case-insensitively.
func ParsePaymentStatus(label string) (PaymentStatus, bool) {
	folded := fold.String(label)
	for code, l := range paymentStatusLabels {
		if fold.String(l) == folded {
			return code, true
		}
	}
	return 0, false
}

// OrderStatusCatalogue returns the code-to-label map included in list
// responses so clients can render filter dropdowns.
func OrderStatusCatalogue() map[OrderStatus]string {
	m := make(map[OrderStatus]string, len(orderStatusLabels))
	for k, v := range orderStatusLabels {
		m[k] = v
	}
	return m
}

// PaymentStatusCatalogue returns the code-to-label map for payment states.
func PaymentStatusCatalogue() map[PaymentStatus]string {
	m := make(map[PaymentStatus]string, len(paymentStatusLabels))
	for k, v := range paymentStatusLabels {
		m[k] = v
	}
	return m
}
