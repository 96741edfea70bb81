package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, kind, date, text, status, user_id, order_id, avatar`

// NotificationRepo implements the NotificationRepository port on
// PostgreSQL (usable with pool or tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository builds the persistence adapter for
// notifications. Pass pool or tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserts a notification.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (kind, date, text, status, user_id, order_id, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		n.Kind, n.Date, n.Text, n.Status, n.UserID, n.OrderID, n.Avatar,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func buildNotificationWhere(f repository.NotificationFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{f.UserID}

	if f.Kind != "" {
		args = append(args, f.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if f.TextContains != "" {
		args = append(args, "%"+f.TextContains+"%")
		conds = append(conds, fmt.Sprintf("text ILIKE $%d", len(args)))
	}
	if f.OrderID != nil {
		args = append(args, *f.OrderID)
		conds = append(conds, fmt.Sprintf("order_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of the recipient's notifications, newest first.
func (r *NotificationRepo) List(f repository.NotificationFilter, limit, offset int) ([]*entity.Notification, error) {
	where, args := buildNotificationWhere(f)
	query := `SELECT ` + notificationColumns + ` FROM notifications` + where + ` ORDER BY date DESC`
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// Count returns the total matching the filter.
func (r *NotificationRepo) Count(f repository.NotificationFilter) (int, error) {
	where, args := buildNotificationWhere(f)
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM notifications`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return count, nil
}

// Recent returns up to limit notifications of the user with one of the
// given statuses, newest first.
func (r *NotificationRepo) Recent(userID int64, statuses []string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY date DESC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, userID, statuses, limit)
	if err != nil {
		return nil, fmt.Errorf("recent notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// GetForUser fetches a notification by id scoped to its recipient.
func (r *NotificationRepo) GetForUser(id, userID int64) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1 AND user_id = $2`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&n.ID, &n.Kind, &n.Date, &n.Text, &n.Status, &n.UserID, &n.OrderID, &n.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// UpdateStatus overwrites the status of one notification.
func (r *NotificationRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}
	return nil
}

// BulkStatus moves every notification of the user from one status to
// another.
func (r *NotificationRepo) BulkStatus(userID int64, from, to string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET status = $3 WHERE user_id = $1 AND status = $2`, userID, from, to)
	if err != nil {
		return fmt.Errorf("bulk notification status: %w", err)
	}
	return nil
}

// FirstReminderByOrder returns the first payment reminder tied to the
// order, or nil.
func (r *NotificationRepo) FirstReminderByOrder(orderID int64) (*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications
		WHERE order_id = $1 AND kind = $2 ORDER BY id LIMIT 1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, orderID, entity.KindPaymentReminder).Scan(
		&n.ID, &n.Kind, &n.Date, &n.Text, &n.Status, &n.UserID, &n.OrderID, &n.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reminder by order: %w", err)
	}
	return &n, nil
}

func collectNotifications(rows pgx.Rows) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Date, &n.Text, &n.Status, &n.UserID, &n.OrderID, &n.Avatar); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
