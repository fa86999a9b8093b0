package entity

import "time"

// Warehouse representa una bodega origen de transferencias.
// El nombre actúa como clave natural: así identifica bodegas el contrato HTTP
// y así las referencia la hoja de cálculo de la que provienen los datos.
type Warehouse struct {
	Name        string
	TargetStore string // tienda destino dedicada de esta bodega
	CreatedAt   time.Time
}
