package dto

// ErrorResponse respuesta de error estándar de las rutas propias de la API.
// Las rutas del contrato de transferencia usan TransferErrorResponse (envelope
// {"error": ...} que el cliente consume tal cual).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransferErrorResponse envelope de error del contrato de transferencia.
type TransferErrorResponse struct {
	Error string `json:"error"`
}
