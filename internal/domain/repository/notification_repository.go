package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// NotificationRepository puerto para la lista de no-leídos por destinatario.
// El backend es el dueño del estado: el cliente solo lo refleja, nunca lo calcula.
type NotificationRepository interface {
	Append(ctx context.Context, n *entity.Notification) error
	ListByRecipient(ctx context.Context, email string) ([]*entity.Notification, error)
	// ClearChat elimina las notificaciones de un chat concreto para el
	// destinatario; sucede al abrir ese chat.
	ClearChat(ctx context.Context, recipient, chatID string) error
}
