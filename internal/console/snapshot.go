package console

import "strings"

// SnapshotState estado del snapshot por selección de bodega.
type SnapshotState int

const (
	StateEmpty SnapshotState = iota
	StateLoading
	StateReady
	StateErrored
)

func (s SnapshotState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Snapshot copia local, por bodega, de la lista de productos con su stock.
// El backend es el único dueño del stock real: esta copia vale hasta la
// siguiente mutación de cualquier actor y se refresca siempre completa, nunca
// por deltas. Diseñada para el modelo de un solo hilo de la consola; no es
// segura para uso concurrente.
type Snapshot struct {
	state     SnapshotState
	warehouse string
	products  []Product
	selected  int // índice en products; -1 = sin selección
	errMsg    string
}

// NewSnapshot crea un snapshot vacío sin bodega seleccionada.
func NewSnapshot() *Snapshot {
	return &Snapshot{state: StateEmpty, selected: -1}
}

// SelectWarehouse cambia de bodega: el snapshot vuelve a Empty y se pierde
// cualquier selección de producto anterior.
func (s *Snapshot) SelectWarehouse(warehouse string) {
	s.state = StateEmpty
	s.warehouse = warehouse
	s.products = nil
	s.selected = -1
	s.errMsg = ""
}

// StartLoading marca el inicio del fetch de productos para la bodega actual.
func (s *Snapshot) StartLoading() {
	s.state = StateLoading
	s.products = nil
	s.selected = -1
	s.errMsg = ""
}

// SetProducts instala el resultado del fetch: Ready con el primer producto del
// orden del backend como selección por defecto, o sin selección si no hay filas.
func (s *Snapshot) SetProducts(products []Product) {
	s.state = StateReady
	s.products = products
	s.errMsg = ""
	if len(products) > 0 {
		s.selected = 0
	} else {
		s.selected = -1
	}
}

// SetError instala el fallo del fetch: Errored, sin productos ni selección.
func (s *Snapshot) SetError(msg string) {
	s.state = StateErrored
	s.products = nil
	s.selected = -1
	s.errMsg = msg
}

// State devuelve el estado actual.
func (s *Snapshot) State() SnapshotState { return s.state }

// Warehouse devuelve la bodega seleccionada ("" si ninguna).
func (s *Snapshot) Warehouse() string { return s.warehouse }

// ErrorMessage devuelve el mensaje de error del último fetch fallido.
func (s *Snapshot) ErrorMessage() string { return s.errMsg }

// Products devuelve las filas actuales (solo con sentido en Ready).
func (s *Snapshot) Products() []Product { return s.products }

// Selected devuelve el producto seleccionado, si lo hay.
func (s *Snapshot) Selected() (Product, bool) {
	if s.state != StateReady || s.selected < 0 || s.selected >= len(s.products) {
		return Product{}, false
	}
	return s.products[s.selected], true
}

// SelectProduct selecciona un producto por nombre. Solo es válido en Ready;
// en cualquier otro estado la selección queda deshabilitada.
func (s *Snapshot) SelectProduct(name string) bool {
	if s.state != StateReady {
		return false
	}
	for i, p := range s.products {
		if sameProduct(p.Name, name) {
			s.selected = i
			return true
		}
	}
	return false
}

// CanSubmit indica si la ruta de envío está habilitada: snapshot Ready y un
// producto seleccionado.
func (s *Snapshot) CanSubmit() bool {
	_, ok := s.Selected()
	return ok
}

// ApplyTransferResult parchea el stock autoritativo del producto afectado,
// identificado por el nombre del traslado y no por la selección actual: si el
// usuario navegó a otra bodega mientras el request estaba en vuelo, el
// resultado simplemente no encuentra la fila y no corrompe nada. El resto de
// filas queda intacto; no se hace re-fetch.
func (s *Snapshot) ApplyTransferResult(productName string, newStock int) bool {
	if s.state != StateReady {
		return false
	}
	for i := range s.products {
		if sameProduct(s.products[i].Name, productName) {
			s.products[i].Stock = newStock
			return true
		}
	}
	return false
}

// sameProduct compara nombres de producto con la misma normalización del
// backend: minúsculas y sin espacios en los extremos.
func sameProduct(a, b string) bool {
	return strings.ToLower(strings.TrimSpace(a)) == strings.ToLower(strings.TrimSpace(b))
}
