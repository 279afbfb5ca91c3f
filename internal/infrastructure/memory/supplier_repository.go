package memory

import (
	"sync"

	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
)

// SupplierRepository implementación en memoria del puerto de proveedores.
type SupplierRepository struct {
	mu   sync.RWMutex
	seq  *Sequence
	byID map[int]*entity.Supplier
	ids  []int
}

// NewSupplierRepository crea el repositorio con su secuencia de IDs.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		seq:  NewSequence(supplierSeqStart),
		byID: make(map[int]*entity.Supplier),
	}
}

// NextID asigna el siguiente identificador de proveedor.
func (r *SupplierRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.Next()
}

// Create inserta el proveedor.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[supplier.ID] = supplier
	r.ids = append(r.ids, supplier.ID)
	return nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *SupplierRepository) GetByID(id int) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// List devuelve los proveedores en orden de inserción.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Supplier, 0, len(r.ids))
	for _, id := range r.ids {
		list = append(list, r.byID[id])
	}
	return list, nil
}
