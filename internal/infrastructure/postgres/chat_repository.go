package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

var _ repository.ChatRepository = (*ChatRepo)(nil)

// ChatRepo implementación de ChatRepository sobre PostgreSQL (usable con pool o tx).
// Los participantes se guardan como text[]; el par es no ordenado.
type ChatRepo struct {
	q Querier
}

// NewChatRepository construye el adaptador de chats. Pasar pool o tx (Querier).
func NewChatRepository(q Querier) *ChatRepo {
	return &ChatRepo{q: q}
}

// Create persiste un chat nuevo.
func (r *ChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO chats (id, participants, created_at) VALUES ($1, $2, $3)`,
		chat.ID, chat.Participants, chat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	return nil
}

// GetByID obtiene un chat por ID.
func (r *ChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	var c entity.Chat
	err := r.q.QueryRow(ctx,
		`SELECT id, participants, created_at FROM chats WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Participants, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return &c, nil
}

// ListByParticipant lista los chats donde participa el email.
func (r *ChatRepo) ListByParticipant(ctx context.Context, email string) ([]*entity.Chat, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, participants, created_at FROM chats WHERE $1 = ANY(participants) ORDER BY created_at`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chat
	for rows.Next() {
		var c entity.Chat
		if err := rows.Scan(&c.ID, &c.Participants, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// FindByParticipants busca el chat del par (a, b) sin importar el orden.
func (r *ChatRepo) FindByParticipants(ctx context.Context, a, b string) (*entity.Chat, error) {
	var c entity.Chat
	err := r.q.QueryRow(ctx,
		`SELECT id, participants, created_at FROM chats
		 WHERE $1 = ANY(participants) AND $2 = ANY(participants) AND cardinality(participants) = 2
		 LIMIT 1`,
		a, b,
	).Scan(&c.ID, &c.Participants, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find chat by participants: %w", err)
	}
	return &c, nil
}

// AppendMessage persiste un mensaje con su timestamp de servidor.
func (r *ChatRepo) AppendMessage(ctx context.Context, msg *entity.ChatMessage) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO chat_messages (id, chat_id, sender, text, ts) VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.ChatID, msg.Sender, msg.Text, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// ListMessages lista los mensajes de un chat en orden ascendente de timestamp.
func (r *ChatRepo) ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, chat_id, sender, text, ts FROM chat_messages WHERE chat_id = $1 ORDER BY ts, id`,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChatMessage
	for rows.Next() {
		var m entity.ChatMessage
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Sender, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
