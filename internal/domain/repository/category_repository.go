package repository

import "github.com/jhoicas/cafe-inventario/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// NextID entrega identificadores estrictamente crecientes, nunca reutilizados.
type CategoryRepository interface {
	NextID() int
	Create(category *entity.Category) error
	GetByID(id int) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
