package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smartstock/stockops-api/internal/application/ports"
)

var _ ports.Notifier = (*TelegramNotifier)(nil)

const telegramSendURL = "https://api.telegram.org/bot%s/sendMessage"

// TelegramNotifier envía alertas a un chat de Telegram vía la Bot API.
type TelegramNotifier struct {
	token      string
	chatID     string
	httpClient *http.Client
}

// NewTelegramNotifier construye el notificador.
func NewTelegramNotifier(token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		token:  token,
		chatID: chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send publica un mensaje de texto en el chat configurado.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	if n.token == "" || n.chatID == "" {
		return fmt.Errorf("telegram: TELEGRAM_BOT_TOKEN o TELEGRAM_CHAT_ID no configurado")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": n.chatID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("telegram: serializar request: %w", err)
	}

	url := fmt.Sprintf(telegramSendURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("telegram: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
