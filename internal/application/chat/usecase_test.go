package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stockops-api/internal/application/chat"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeChatRepo struct {
	chats    []*entity.Chat
	messages []*entity.ChatMessage
}

func (f *fakeChatRepo) Create(_ context.Context, c *entity.Chat) error {
	f.chats = append(f.chats, c)
	return nil
}
func (f *fakeChatRepo) GetByID(_ context.Context, id string) (*entity.Chat, error) {
	for _, c := range f.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeChatRepo) ListByParticipant(_ context.Context, email string) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, c := range f.chats {
		for _, p := range c.Participants {
			if p == email {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}
func (f *fakeChatRepo) FindByParticipants(_ context.Context, a, b string) (*entity.Chat, error) {
	for _, c := range f.chats {
		if len(c.Participants) == 2 &&
			((c.Participants[0] == a && c.Participants[1] == b) ||
				(c.Participants[0] == b && c.Participants[1] == a)) {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeChatRepo) AppendMessage(_ context.Context, m *entity.ChatMessage) error {
	f.messages = append(f.messages, m)
	return nil
}
func (f *fakeChatRepo) ListMessages(_ context.Context, chatID string) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeNotifRepo struct {
	notifications []*entity.Notification
}

func (f *fakeNotifRepo) Append(_ context.Context, n *entity.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}
func (f *fakeNotifRepo) ListByRecipient(_ context.Context, email string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifications {
		if n.Recipient == email {
			out = append(out, n)
		}
	}
	return out, nil
}
func (f *fakeNotifRepo) ClearChat(_ context.Context, recipient, chatID string) error {
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if !(n.Recipient == recipient && n.ChatID == chatID) {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	return nil
}

func buildChatFixture(t *testing.T) (*chat.UseCase, *chat.Hub, string) {
	t.Helper()
	hub := chat.NewHub()
	uc := chat.NewUseCase(&fakeChatRepo{}, &fakeNotifRepo{}, hub)

	created, err := uc.StartChat(context.Background(), "ana@acme.io", dto.CreateChatRequest{RecipientEmail: "luis@acme.io"})
	require.NoError(t, err)
	return uc, hub, created.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStartChat_ReutilizaChatExistente(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	// El destinatario inicia con el creador: mismo par, mismo chat.
	again, err := uc.StartChat(context.Background(), "luis@acme.io", dto.CreateChatRequest{RecipientEmail: "ana@acme.io"})
	require.NoError(t, err)
	assert.Equal(t, chatID, again.ID)
}

func TestStartChat_RechazaChatConsigoMismo(t *testing.T) {
	uc, _, _ := buildChatFixture(t)

	_, err := uc.StartChat(context.Background(), "ana@acme.io", dto.CreateChatRequest{RecipientEmail: "ana@acme.io"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSendMessage_NotificaSoloAlOtroParticipante(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	_, err := uc.SendMessage(context.Background(), "ana@acme.io", chatID, dto.SendMessageRequest{Text: "hola"})
	require.NoError(t, err)

	mine, err := uc.Notifications(context.Background(), "ana@acme.io")
	require.NoError(t, err)
	assert.Empty(t, mine.Notifications, "el emisor no recibe notificación de su propio mensaje")

	theirs, err := uc.Notifications(context.Background(), "luis@acme.io")
	require.NoError(t, err)
	require.Len(t, theirs.Notifications, 1)
	assert.Equal(t, "ana@acme.io", theirs.Notifications[0].Sender)
	assert.Equal(t, "hola", theirs.Notifications[0].Message)
	assert.Equal(t, chatID, theirs.Notifications[0].ChatID)
}

func TestSendMessage_PublicaSnapshotCompleto(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	ch, cancel := uc.Subscribe("luis@acme.io")
	defer cancel()

	_, err := uc.SendMessage(context.Background(), "ana@acme.io", chatID, dto.SendMessageRequest{Text: "uno"})
	require.NoError(t, err)
	_, err = uc.SendMessage(context.Background(), "ana@acme.io", chatID, dto.SendMessageRequest{Text: "dos"})
	require.NoError(t, err)

	// El último snapshot contiene el estado completo, no un delta.
	var last []dto.NotificationDTO
	for {
		select {
		case snap := <-ch:
			last = snap
			continue
		case <-time.After(100 * time.Millisecond):
		}
		break
	}
	require.Len(t, last, 2, "cada push debe traer la lista completa de no-leídos")
}

func TestOpenChat_LimpiaNotificacionesDelChat(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	_, err := uc.SendMessage(context.Background(), "ana@acme.io", chatID, dto.SendMessageRequest{Text: "hola"})
	require.NoError(t, err)

	require.NoError(t, uc.OpenChat(context.Background(), "luis@acme.io", chatID))

	after, err := uc.Notifications(context.Background(), "luis@acme.io")
	require.NoError(t, err)
	assert.Empty(t, after.Notifications, "abrir el chat vacía sus no-leídos")
}

func TestSendMessage_RechazaNoParticipante(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	_, err := uc.SendMessage(context.Background(), "intruso@acme.io", chatID, dto.SendMessageRequest{Text: "hola"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListMessages_OrdenAscendente(t *testing.T) {
	uc, _, chatID := buildChatFixture(t)

	for _, text := range []string{"uno", "dos", "tres"} {
		_, err := uc.SendMessage(context.Background(), "ana@acme.io", chatID, dto.SendMessageRequest{Text: text})
		require.NoError(t, err)
	}

	msgs, err := uc.ListMessages(context.Background(), "luis@acme.io", chatID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "uno", msgs[0].Text)
	assert.Equal(t, "tres", msgs[2].Text)
	assert.True(t, !msgs[2].Timestamp.Before(msgs[0].Timestamp))
}
