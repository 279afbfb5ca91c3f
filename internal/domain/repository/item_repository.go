package repository

import "github.com/jhoicas/cafe-inventario/internal/domain/entity"

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
// List devuelve los ítems en orden de inserción para listados deterministas.
type ItemRepository interface {
	NextID() int
	Create(item *entity.InventoryItem) error
	GetByID(id int) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List() ([]*entity.InventoryItem, error)
}
