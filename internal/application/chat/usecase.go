package chat

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// UseCase casos de uso de chat y notificaciones.
// El backend es el dueño del estado de no-leídos: cada mutación (mensaje
// enviado, chat abierto) recalcula la lista completa del destinatario y la
// publica al hub como snapshot total.
type UseCase struct {
	chatRepo  repository.ChatRepository
	notifRepo repository.NotificationRepository
	hub       *Hub
}

// NewUseCase construye el caso de uso.
func NewUseCase(chatRepo repository.ChatRepository, notifRepo repository.NotificationRepository, hub *Hub) *UseCase {
	return &UseCase{chatRepo: chatRepo, notifRepo: notifRepo, hub: hub}
}

// StartChat crea un chat entre creator y recipient, o reutiliza el existente.
func (uc *UseCase) StartChat(ctx context.Context, creator string, in dto.CreateChatRequest) (*dto.ChatResponse, error) {
	if in.RecipientEmail == "" || in.RecipientEmail == creator {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.chatRepo.FindByParticipants(ctx, creator, in.RecipientEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toChatResponse(existing), nil
	}
	chat := &entity.Chat{
		ID:           uuid.New().String(),
		Participants: []string{creator, in.RecipientEmail},
		CreatedAt:    time.Now(),
	}
	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return toChatResponse(chat), nil
}

// ListChats lista los chats donde participa el usuario.
func (uc *UseCase) ListChats(ctx context.Context, email string) ([]dto.ChatResponse, error) {
	list, err := uc.chatRepo.ListByParticipant(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toChatResponse(c))
	}
	return out, nil
}

// ListMessages devuelve los mensajes de un chat en orden ascendente de
// timestamp de servidor. Solo participantes.
func (uc *UseCase) ListMessages(ctx context.Context, email, chatID string) ([]dto.MessageResponse, error) {
	chat, err := uc.memberChat(ctx, email, chatID)
	if err != nil {
		return nil, err
	}
	msgs, err := uc.chatRepo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.MessageResponse{
			ID:        m.ID,
			ChatID:    m.ChatID,
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}
	return out, nil
}

// SendMessage persiste el mensaje y añade una notificación a la lista de
// no-leídos de cada otro participante, publicando el snapshot resultante.
func (uc *UseCase) SendMessage(ctx context.Context, sender, chatID string, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	chat, err := uc.memberChat(ctx, sender, chatID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	msg := &entity.ChatMessage{
		ID:        uuid.New().String(),
		ChatID:    chat.ID,
		Sender:    sender,
		Text:      in.Text,
		Timestamp: now,
	}
	if err := uc.chatRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}

	for _, p := range chat.Participants {
		if p == sender {
			continue
		}
		n := &entity.Notification{
			Recipient: p,
			ChatID:    chat.ID,
			Sender:    sender,
			Message:   in.Text,
			Timestamp: now,
		}
		if err := uc.notifRepo.Append(ctx, n); err != nil {
			return nil, err
		}
		if err := uc.publishSnapshot(ctx, p); err != nil {
			return nil, err
		}
	}

	return &dto.MessageResponse{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		Sender:    msg.Sender,
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
	}, nil
}

// OpenChat marca el chat como leído: elimina sus notificaciones de la lista
// del lector y publica el snapshot resultante.
func (uc *UseCase) OpenChat(ctx context.Context, reader, chatID string) error {
	chat, err := uc.memberChat(ctx, reader, chatID)
	if err != nil {
		return err
	}
	if err := uc.notifRepo.ClearChat(ctx, reader, chat.ID); err != nil {
		return err
	}
	return uc.publishSnapshot(ctx, reader)
}

// Notifications devuelve el snapshot actual de no-leídos del destinatario.
func (uc *UseCase) Notifications(ctx context.Context, email string) (*dto.NotificationListResponse, error) {
	snapshot, err := uc.snapshot(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationListResponse{Notifications: snapshot}, nil
}

// Subscribe registra un suscriptor de snapshots para el destinatario.
func (uc *UseCase) Subscribe(email string) (<-chan []dto.NotificationDTO, func()) {
	return uc.hub.Subscribe(email)
}

func (uc *UseCase) memberChat(ctx context.Context, email, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, domain.ErrNotFound
	}
	for _, p := range chat.Participants {
		if p == email {
			return chat, nil
		}
	}
	return nil, domain.ErrForbidden
}

func (uc *UseCase) snapshot(ctx context.Context, email string) ([]dto.NotificationDTO, error) {
	list, err := uc.notifRepo.ListByRecipient(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationDTO, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationDTO{
			ChatID:    n.ChatID,
			Sender:    n.Sender,
			Message:   n.Message,
			Timestamp: n.Timestamp,
		})
	}
	return out, nil
}

func (uc *UseCase) publishSnapshot(ctx context.Context, email string) error {
	snapshot, err := uc.snapshot(ctx, email)
	if err != nil {
		return err
	}
	uc.hub.Publish(email, snapshot)
	return nil
}

func toChatResponse(c *entity.Chat) *dto.ChatResponse {
	if c == nil {
		return nil
	}
	return &dto.ChatResponse{
		ID:           c.ID,
		Participants: c.Participants,
		CreatedAt:    c.CreatedAt,
	}
}
