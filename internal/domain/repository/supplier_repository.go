package repository

import "github.com/jhoicas/cafe-inventario/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	NextID() int
	Create(supplier *entity.Supplier) error
	GetByID(id int) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}
