package memory

import (
	"sync"

	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
)

// OrderRepository implementación en memoria del puerto de órdenes de compra.
type OrderRepository struct {
	mu   sync.RWMutex
	seq  *Sequence
	byID map[int]*entity.PurchaseOrder
	ids  []int
}

// NewOrderRepository crea el repositorio con su secuencia de IDs.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		seq:  NewSequence(orderSeqStart),
		byID: make(map[int]*entity.PurchaseOrder),
	}
}

// NextID asigna el siguiente identificador de orden.
func (r *OrderRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.Next()
}

// Create inserta la orden.
func (r *OrderRepository) Create(order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[order.ID] = order
	r.ids = append(r.ids, order.ID)
	return nil
}

// GetByID devuelve la orden o nil si no existe.
func (r *OrderRepository) GetByID(id int) (*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza la orden almacenada.
func (r *OrderRepository) Update(order *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	r.byID[order.ID] = order
	return nil
}

// List devuelve las órdenes en orden de inserción.
func (r *OrderRepository) List() ([]*entity.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.PurchaseOrder, 0, len(r.ids))
	for _, id := range r.ids {
		list = append(list, r.byID[id])
	}
	return list, nil
}
