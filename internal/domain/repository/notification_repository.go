package repository

import (
	"time"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
)

// NotificationFilter narrows a recipient's notification listing. All
// fields AND-combine; UserID is mandatory.
type NotificationFilter struct {
	UserID       int64
	Kind         string
	TextContains string
	OrderID      *int64
	From         *time.Time
	To           *time.Time
}

// NotificationRepository data access for notifications.
type NotificationRepository interface {
	Create(n *entity.Notification) error

	// List returns the filtered notifications, newest first.
	List(filter NotificationFilter, limit, offset int) ([]*entity.Notification, error)
	Count(filter NotificationFilter) (int, error)

	// Recent returns up to limit notifications of the user with one of
	// the given statuses, newest first.
	Recent(userID int64, statuses []string, limit int) ([]*entity.Notification, error)

	// GetForUser fetches a notification by id scoped to its recipient.
	// Returns nil when it does not exist for that recipient.
	GetForUser(id, userID int64) (*entity.Notification, error)

	UpdateStatus(id int64, status string) error

	// BulkStatus moves every notification of the user with status from
	// to status to.
	BulkStatus(userID int64, from, to string) error

	// FirstReminderByOrder returns the first payment-reminder
	// notification tied to the order, or nil.
	FirstReminderByOrder(orderID int64) (*entity.Notification, error)
}
