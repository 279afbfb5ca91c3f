package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada: stock inicial, compra o recepción de orden
	MovementTypeOUT = "OUT" // salida: venta o consumo
)

// StockMovement registra un cambio de stock de un ítem (kárdex).
// Quantity siempre es positiva; Type indica el sentido.
type StockMovement struct {
	ID        string
	ItemID    int
	Type      string
	Quantity  int
	Reference string // origen del movimiento, p. ej. "recepción orden 5001"
	Date      time.Time
}
