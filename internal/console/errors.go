package console

import "fmt"

// Taxonomía de errores de la consola. Cada tipo termina en la UI como un
// mensaje visible; ninguno se reintenta automáticamente ni tumba el proceso.

// NetworkError falla de transporte: no hubo respuesta del backend.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("error de red: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError el backend respondió un estatus de error sin mensaje estructurado.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("el servidor respondió HTTP %d", e.Status)
}

// ValidationError el backend respondió con un campo "error" estructurado
// (p. ej. stock insuficiente detectado del lado del servidor pese a pasar la
// validación local con un snapshot obsoleto). El texto se muestra verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidationRejection rechazo del validador local: no se hizo ninguna llamada
// de red.
type ValidationRejection struct {
	Reason string
}

func (e *ValidationRejection) Error() string { return e.Reason }
