package entity

import "time"

// OrderStatus estado de una orden de compra.
type OrderStatus string

// Estados posibles de una orden de compra.
const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusSubmitted OrderStatus = "SUBMITTED"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// transitions tabla explícita de transiciones entre estados.
// RECEIVED y CANCELED son terminales.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusOpen:      {OrderStatusSubmitted, OrderStatusCanceled},
	OrderStatusSubmitted: {OrderStatusReceived, OrderStatusCanceled},
	OrderStatusReceived:  {},
	OrderStatusCanceled:  {},
}

// CanTransitionTo indica si la tabla permite pasar al estado destino.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// PurchaseOrder representa una orden de compra a un proveedor.
// Lines mapea itemID -> cantidad solicitada.
type PurchaseOrder struct {
	ID         int
	OrderDate  time.Time
	SupplierID int
	Status     OrderStatus
	Lines      map[int]int
}

// AddLine agrega qty unidades del ítem a la orden. Si el ítem ya tiene
// línea la cantidad se acumula; una cantidad negativa cuenta como 0.
func (po *PurchaseOrder) AddLine(itemID, qty int) {
	if qty < 0 {
		qty = 0
	}
	if po.Lines == nil {
		po.Lines = make(map[int]int)
	}
	po.Lines[itemID] += qty
}
