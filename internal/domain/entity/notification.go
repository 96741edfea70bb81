package entity

import (
	"fmt"
	"time"
)

// Notification kinds. The stored value is the display string, matching the
// catalogue codes 0-2 exposed on list responses.
const (
	KindPaymentReminder = "Betalingsherinnering"
	KindPaymentReceived = "Ontvangen betaling"
	KindStockAvailable  = "Alle producten voorradig"
)

// Notification statuses. New notifications move to unread the first time
// the recipient lists them and to read when opened; an explicit status
// update may set any value.
const (
	StatusNew    = "nieuw"
	StatusUnread = "ongelezen"
	StatusRead   = "gelezen"
)

// Notification is an in-app message addressed to one user, tied to an
// order.
type Notification struct {
	ID      int64
	Kind    string
	Date    time.Time
	Text    string
	Status  string
	UserID  int64
	OrderID int64
	Avatar  string // display name of the company the event originates from
}

// NotificationCatalogue returns the kind code-to-label map included in
// list responses.
func NotificationCatalogue() map[int]string {
	return map[int]string{
		0: "betalingsherinnering",
		1: KindPaymentReceived,
		2: KindStockAvailable,
	}
}

// KindForCode maps a catalogue code to the stored kind string.
func KindForCode(code int) string {
	switch code {
	case 0:
		return KindPaymentReminder
	case 1:
		return KindPaymentReceived
	case 2:
		return KindStockAvailable
	}
	return ""
}

// NotificationText renders the message body for a notification kind and
// the order it refers to.
func NotificationText(kind, companyName string, orderID int64) string {
	switch kind {
	case KindPaymentReminder:
		return fmt.Sprintf("%s heeft een betaling verzocht voor bestelling %d", companyName, orderID)
	case KindPaymentReceived:
		return fmt.Sprintf("%s heeft de betaling voor bestelling %d ontvangen", companyName, orderID)
	case KindStockAvailable:
		return fmt.Sprintf("Alle producten van bestelling %d zijn voorradig bij %s", orderID, companyName)
	}
	return ""
}
