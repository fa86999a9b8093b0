package entity

// TransferRequest solicitud de traslado de stock de una bodega a su tienda destino.
// Quantity debe ser un entero positivo; la validación final la hace el backend
// contra el stock vivo, no contra el snapshot del cliente.
type TransferRequest struct {
	WarehouseID string
	ProductName string
	Quantity    int
}

// TransferResult resultado autoritativo de un traslado.
// NewStock es el stock restante en la bodega origen tras el traslado;
// el cliente lo consume exactamente una vez para parchear su snapshot.
type TransferResult struct {
	Success     bool
	Message     string
	NewStock    int
	TargetStore string
}
