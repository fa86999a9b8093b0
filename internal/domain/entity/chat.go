package entity

import "time"

// Chat conversación entre dos o más usuarios (identificados por email).
type Chat struct {
	ID           string
	Participants []string
	CreatedAt    time.Time
}

// ChatMessage mensaje dentro de un chat, ordenado por timestamp de servidor ascendente.
type ChatMessage struct {
	ID        string
	ChatID    string
	Sender    string
	Text      string
	Timestamp time.Time
}

// Notification entrada en la lista de no-leídos de un destinatario.
// El backend la crea al enviar un mensaje y la elimina cuando el
// destinatario abre el chat correspondiente. La lista completa se
// entrega al cliente en cada cambio (reemplazo total, no deltas).
type Notification struct {
	Recipient string
	ChatID    string
	Sender    string
	Message   string
	Timestamp time.Time
}
