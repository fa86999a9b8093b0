package dto

import "time"

// CreateChatRequest entrada para iniciar un chat con otro usuario.
type CreateChatRequest struct {
	RecipientEmail string `json:"recipient_email"`
}

// SendMessageRequest entrada para enviar un mensaje a un chat.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ChatResponse salida de un chat.
type ChatResponse struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// MessageResponse salida de un mensaje (orden por timestamp de servidor ascendente).
type MessageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationDTO entrada de la lista de no-leídos. La lista completa se
// entrega en cada push (reemplazo total).
type NotificationDTO struct {
	ChatID    string    `json:"chatId"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationListResponse snapshot completo de no-leídos de un destinatario.
type NotificationListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
}
