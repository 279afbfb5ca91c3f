package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de reorden para ítems nuevos.
const (
	DefaultReorderLevel = 5
	DefaultReorderQty   = 10
)

// InventoryItem representa un ítem del catálogo con su nivel de stock.
// CurrentStock se muta únicamente vía entradas, salidas y recepción de
// órdenes de compra; nunca queda negativo.
type InventoryItem struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	CategoryID   int
	SupplierID   int
	CurrentStock int
	ReorderLevel int // stock <= ReorderLevel => ítem bajo
	ReorderQty   int // cantidad por defecto al ordenar el ítem
	CreatedAt    time.Time
	UpdatedAt    time.Time // último cambio de stock
}

// IsLowStock indica si el ítem está en o por debajo de su umbral de reorden.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.ReorderLevel
}
