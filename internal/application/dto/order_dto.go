package dto

import "time"

// OrderResponse proyección de una orden de compra.
// Lines mapea itemID -> cantidad solicitada.
type OrderResponse struct {
	ID         int
	OrderDate  time.Time
	SupplierID int
	Status     string
	Lines      map[int]int
}
