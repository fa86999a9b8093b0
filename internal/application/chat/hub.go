package chat

import (
	"sync"

	"github.com/smartstock/stockops-api/internal/application/dto"
)

const subscriberBuffer = 8

// Hub reparte snapshots de notificaciones a los suscriptores de cada
// destinatario. Cada push lleva la lista completa de no-leídos (reemplazo
// total, nunca deltas): un suscriptor lento puede perder pushes intermedios
// sin perder estado, porque el siguiente snapshot lo contiene todo.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[int]chan []dto.NotificationDTO
	nextID int
}

// NewHub construye el hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan []dto.NotificationDTO)}
}

// Subscribe registra un suscriptor para un destinatario y devuelve el canal de
// snapshots junto con la función de cancelación.
func (h *Hub) Subscribe(recipient string) (<-chan []dto.NotificationDTO, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[recipient] == nil {
		h.subs[recipient] = make(map[int]chan []dto.NotificationDTO)
	}
	id := h.nextID
	h.nextID++

	ch := make(chan []dto.NotificationDTO, subscriberBuffer)
	h.subs[recipient][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[recipient][id]; ok {
			delete(h.subs[recipient], id)
			close(sub)
			if len(h.subs[recipient]) == 0 {
				delete(h.subs, recipient)
			}
		}
	}
	return ch, cancel
}

// Publish entrega el snapshot completo a todos los suscriptores del
// destinatario. Si el buffer de un suscriptor está lleno se descarta el
// snapshot más viejo: solo importa el estado más reciente.
func (h *Hub) Publish(recipient string, snapshot []dto.NotificationDTO) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[recipient] {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

// Subscribers devuelve cuántos suscriptores tiene un destinatario.
func (h *Hub) Subscribers(recipient string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[recipient])
}
