package memory

import (
	"sync"

	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
)

// CategoryRepository implementación en memoria del puerto de categorías.
// Mantiene un slice con el orden de inserción para listados deterministas.
type CategoryRepository struct {
	mu   sync.RWMutex
	seq  *Sequence
	byID map[int]*entity.Category
	ids  []int
}

// NewCategoryRepository crea el repositorio con su secuencia de IDs.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		seq:  NewSequence(categorySeqStart),
		byID: make(map[int]*entity.Category),
	}
}

// NextID asigna el siguiente identificador de categoría.
func (r *CategoryRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.Next()
}

// Create inserta la categoría.
func (r *CategoryRepository) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[category.ID] = category
	r.ids = append(r.ids, category.ID)
	return nil
}

// GetByID devuelve la categoría o nil si no existe.
func (r *CategoryRepository) GetByID(id int) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// List devuelve las categorías en orden de inserción.
func (r *CategoryRepository) List() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.ids))
	for _, id := range r.ids {
		list = append(list, r.byID[id])
	}
	return list, nil
}
