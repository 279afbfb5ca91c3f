package memory

import (
	"sync"

	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
)

// MovementRepository implementación en memoria del kárdex de movimientos.
// Los movimientos se guardan en orden de registro; no se mutan ni eliminan.
type MovementRepository struct {
	mu        sync.RWMutex
	movements []*entity.StockMovement
}

// NewMovementRepository crea el repositorio vacío.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{}
}

// Create registra el movimiento.
func (r *MovementRepository) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, movement)
	return nil
}

// ListByItem devuelve los movimientos de un ítem, en orden cronológico.
func (r *MovementRepository) ListByItem(itemID int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.StockMovement, 0)
	for _, m := range r.movements {
		if m.ItemID == itemID {
			list = append(list, m)
		}
	}
	return list, nil
}

// List devuelve todos los movimientos en orden cronológico.
func (r *MovementRepository) List() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.StockMovement, len(r.movements))
	copy(list, r.movements)
	return list, nil
}
