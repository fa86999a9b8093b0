package postgres

import (
	"context"
	"fmt"

	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de no-leídos. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Append agrega una notificación a la lista del destinatario.
func (r *NotificationRepo) Append(ctx context.Context, n *entity.Notification) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO notifications (recipient, chat_id, sender, message, ts) VALUES ($1, $2, $3, $4, $5)`,
		n.Recipient, n.ChatID, n.Sender, n.Message, n.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByRecipient devuelve los no-leídos del destinatario en orden de llegada.
func (r *NotificationRepo) ListByRecipient(ctx context.Context, email string) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx,
		`SELECT recipient, chat_id, sender, message, ts FROM notifications WHERE recipient = $1 ORDER BY ts`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.Recipient, &n.ChatID, &n.Sender, &n.Message, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// ClearChat elimina los no-leídos de un chat para el destinatario.
func (r *NotificationRepo) ClearChat(ctx context.Context, recipient, chatID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM notifications WHERE recipient = $1 AND chat_id = $2`,
		recipient, chatID,
	)
	if err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
