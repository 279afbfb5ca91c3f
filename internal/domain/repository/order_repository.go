package repository

import "github.com/jhoicas/cafe-inventario/internal/domain/entity"

// OrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type OrderRepository interface {
	NextID() int
	Create(order *entity.PurchaseOrder) error
	GetByID(id int) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	List() ([]*entity.PurchaseOrder, error)
}
