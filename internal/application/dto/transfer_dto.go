package dto

// TransferRequest body de POST /api/transfer. Claves camelCase heredadas del
// contrato del backend.
type TransferRequest struct {
	WarehouseID string `json:"warehouseId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// TransferResponse respuesta de éxito de POST /api/transfer.
// NewStock es el valor autoritativo post-traslado para la bodega origen.
type TransferResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewStock    int    `json:"newStock"`
	TargetStore string `json:"targetStore"`
}
