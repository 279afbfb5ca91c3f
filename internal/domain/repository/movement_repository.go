package repository

import "github.com/jhoicas/cafe-inventario/internal/domain/entity"

// MovementRepository define el puerto de persistencia para StockMovement (DIP).
// List devuelve los movimientos en orden de registro (cronológico).
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(itemID int) ([]*entity.StockMovement, error)
	List() ([]*entity.StockMovement, error)
}
