package memory

import (
	"sync"

	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
)

// ItemRepository implementación en memoria del puerto de ítems.
type ItemRepository struct {
	mu   sync.RWMutex
	seq  *Sequence
	byID map[int]*entity.InventoryItem
	ids  []int
}

// NewItemRepository crea el repositorio con su secuencia de IDs.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		seq:  NewSequence(itemSeqStart),
		byID: make(map[int]*entity.InventoryItem),
	}
}

// NextID asigna el siguiente identificador de ítem.
func (r *ItemRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.Next()
}

// Create inserta el ítem.
func (r *ItemRepository) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[item.ID] = item
	r.ids = append(r.ids, item.ID)
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *ItemRepository) GetByID(id int) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza el ítem almacenado.
func (r *ItemRepository) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.byID[item.ID] = item
	return nil
}

// List devuelve los ítems en orden de inserción.
func (r *ItemRepository) List() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.InventoryItem, 0, len(r.ids))
	for _, id := range r.ids {
		list = append(list, r.byID[id])
	}
	return list, nil
}
