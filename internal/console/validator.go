package console

// Verdict resultado del validador local de traslados.
// Quantity es la cantidad efectiva tras el clamp (las entradas no positivas se
// fuerzan a 1 antes de llegar a la red).
type Verdict struct {
	Admissible bool
	Reason     string
	Quantity   int
}

// ClampQuantity fuerza la cantidad a un mínimo de 1. La política aplica al
// momento de la entrada, no solo al enviar: una cantidad no positiva nunca
// viaja al backend.
func ClampQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}

// ValidateTransfer decide la admisibilidad de un traslado contra el snapshot
// actual, sin I/O. Es solo asesor: el backend es el árbitro final y puede
// rechazar un traslado admisible si otro actor mutó el stock en paralelo.
func ValidateTransfer(snap *Snapshot, quantity int) Verdict {
	if snap == nil || snap.Warehouse() == "" {
		return Verdict{Reason: "no warehouse selected", Quantity: quantity}
	}
	selected, ok := snap.Selected()
	if !ok {
		return Verdict{Reason: "no product selected", Quantity: quantity}
	}
	quantity = ClampQuantity(quantity)
	if quantity > selected.Stock {
		return Verdict{Reason: "exceeds available stock", Quantity: quantity}
	}
	return Verdict{Admissible: true, Quantity: quantity}
}
