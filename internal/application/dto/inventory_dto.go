package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest entrada para dar de alta un ítem del catálogo.
// CurrentStock y ReorderLevel se ajustan a >= 0; ReorderQty a >= 1.
type AddItemRequest struct {
	Name         string
	Price        decimal.Decimal
	CategoryID   int
	SupplierID   int
	CurrentStock int
	ReorderLevel int
	ReorderQty   int
}

// ItemResponse proyección de un ítem del catálogo.
type ItemResponse struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	CategoryID   int
	SupplierID   int
	CurrentStock int
	ReorderLevel int
	ReorderQty   int
	UpdatedAt    time.Time
}
