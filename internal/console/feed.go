package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/smartstock/stockops-api/pkg/logger"
)

// Notification entrada de la lista de no-leídos que empuja el backend.
type Notification struct {
	ChatID    string    `json:"chatId"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Feed adaptador de la suscripción de notificaciones en vivo (SSE). Cada
// evento trae la lista completa de no-leídos del usuario; el estado local se
// reemplaza entero en cada entrega, sin lógica de merge. El feed es puramente
// reactivo: nunca calcula el estado de no-leídos por su cuenta.
type Feed struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewFeed construye el adaptador. token es el JWT de la sesión (viaja en query
// porque EventSource no permite headers).
func NewFeed(baseURL, token string, log *logger.Logger) *Feed {
	return &Feed{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		// Sin timeout: la conexión SSE es de larga vida; la corta el contexto.
		httpClient: &http.Client{},
		log:        log,
	}
}

// Subscribe abre el stream y devuelve un canal de snapshots. El canal conserva
// siempre la entrega más reciente (el último estado reemplaza a los anteriores
// si el consumidor va atrasado) y se cierra cuando el stream termina o el
// contexto se cancela.
func (f *Feed) Subscribe(ctx context.Context) (<-chan []Notification, error) {
	url := f.baseURL + "/api/notifications/stream?token=" + f.token
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ServerError{Status: resp.StatusCode}
	}

	out := make(chan []Notification, 1)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var snapshot []Notification
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &snapshot); err != nil {
				f.log.Warn().Err(err).Msg("feed: evento SSE inválido, se ignora")
				continue
			}
			deliverLatest(out, snapshot)
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			f.log.Warn().Err(err).Msg("feed: stream de notificaciones interrumpido")
		}
	}()
	return out, nil
}

// deliverLatest entrega sin bloquear: si el consumidor va atrasado se descarta
// el snapshot pendiente, porque cada entrega ya es el estado completo.
func deliverLatest(out chan []Notification, snapshot []Notification) {
	for {
		select {
		case out <- snapshot:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}
