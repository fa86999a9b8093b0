package console

import (
	"context"
	"errors"
	"time"
)

// ErrSubmitInFlight ya hay un traslado en vuelo desde esta instancia.
var ErrSubmitInFlight = errors.New("ya hay un traslado en curso")

// DefaultSubmitTimeout límite por defecto para un traslado en vuelo. Un
// request colgado falla cerrado en lugar de dejar la consola bloqueada.
const DefaultSubmitTimeout = 15 * time.Second

// SubmitterState estado del emisor de traslados.
type SubmitterState int

const (
	SubmitterIdle SubmitterState = iota
	SubmitterSubmitting
)

// TransferGateway es la porción del gateway que el emisor necesita.
type TransferGateway interface {
	SubmitTransfer(ctx context.Context, in TransferRequest) (*TransferResult, error)
}

// Submitter orquesta el envío de un traslado: valida localmente, llama al
// gateway con timeout acotado y reconcilia el snapshot con el valor
// autoritativo del backend. Una sola petición en vuelo por instancia; mientras
// está Submitting los controles de envío quedan deshabilitados.
type Submitter struct {
	gateway TransferGateway
	timeout time.Duration
	state   SubmitterState
}

// NewSubmitter construye el emisor. timeout <= 0 usa DefaultSubmitTimeout.
func NewSubmitter(gateway TransferGateway, timeout time.Duration) *Submitter {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &Submitter{gateway: gateway, timeout: timeout}
}

// State devuelve el estado actual.
func (s *Submitter) State() SubmitterState { return s.state }

// Submit envía el traslado del producto seleccionado en el snapshot.
//
// Un rechazo local (ValidationRejection) no toca la red. Un fallo del gateway
// deja el snapshot intacto y al emisor en Idle: el sistema queda en el estado
// válido previo. En éxito, el stock del producto afectado se reemplaza por el
// valor autoritativo del resultado, identificado por nombre y no por la
// selección vigente al completarse.
func (s *Submitter) Submit(ctx context.Context, snap *Snapshot, quantity int) (*TransferResult, error) {
	if s.state == SubmitterSubmitting {
		return nil, ErrSubmitInFlight
	}

	verdict := ValidateTransfer(snap, quantity)
	if !verdict.Admissible {
		return nil, &ValidationRejection{Reason: verdict.Reason}
	}
	selected, _ := snap.Selected()

	s.state = SubmitterSubmitting
	defer func() { s.state = SubmitterIdle }()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.gateway.SubmitTransfer(callCtx, TransferRequest{
		WarehouseID: snap.Warehouse(),
		ProductName: selected.Name,
		Quantity:    verdict.Quantity,
	})
	if err != nil {
		return nil, err
	}

	snap.ApplyTransferResult(selected.Name, result.NewStock)
	return result, nil
}
