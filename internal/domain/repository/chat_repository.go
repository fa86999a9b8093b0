package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// ChatRepository puerto de persistencia para chats y mensajes.
// GetByID devuelve (nil, nil) si el chat no existe.
// ListMessages devuelve los mensajes ordenados por timestamp de servidor ascendente.
type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByParticipant(ctx context.Context, email string) ([]*entity.Chat, error)
	FindByParticipants(ctx context.Context, a, b string) (*entity.Chat, error)
	AppendMessage(ctx context.Context, msg *entity.ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error)
}
