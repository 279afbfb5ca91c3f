package purchasing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/internal/domain/repository"
)

// OrderUseCase ciclo de vida de las órdenes de compra:
// OPEN -> SUBMITTED -> RECEIVED, u OPEN/SUBMITTED -> CANCELED.
//
// Por compatibilidad con el comportamiento histórico, por defecto no se
// valida la transición: recibir una orden ya RECEIVED vuelve a aplicar el
// stock. Con strict=true la tabla de transiciones de entity.OrderStatus
// rechaza esas llamadas con ErrInvalidTransition.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	strict       bool
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
	strict bool,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		strict:       strict,
	}
}

// Create crea una orden OPEN para el proveedor, fechada ahora y sin líneas.
// Falla con ErrSupplierNotExists si el proveedor no existe.
func (uc *OrderUseCase) Create(supplierID int) (*dto.OrderResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrSupplierNotExists
	}
	order := &entity.PurchaseOrder{
		ID:         uc.orderRepo.NextID(),
		OrderDate:  time.Now(),
		SupplierID: supplierID,
		Status:     entity.OrderStatusOpen,
		Lines:      make(map[int]int),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// AddLine agrega qty unidades del ítem a la orden. Una línea existente
// acumula la cantidad en lugar de sobrescribirla.
func (uc *OrderUseCase) AddLine(orderID, itemID, qty int) error {
	order, err := uc.getOrder(orderID)
	if err != nil {
		return err
	}
	order.AddLine(itemID, qty)
	return uc.orderRepo.Update(order)
}

// CreateForItem crea y devuelve una orden para el proveedor del ítem con una
// sola línea. Con qty nil se usa la cantidad de reorden configurada del ítem.
func (uc *OrderUseCase) CreateForItem(itemID int, qty *int) (*dto.OrderResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	order, err := uc.Create(item.SupplierID)
	if err != nil {
		return nil, err
	}
	lineQty := item.ReorderQty
	if qty != nil {
		lineQty = *qty
	}
	if err := uc.AddLine(order.ID, itemID, lineQty); err != nil {
		return nil, err
	}
	return uc.Get(order.ID)
}

// Submit pasa la orden a SUBMITTED.
func (uc *OrderUseCase) Submit(orderID int) error {
	order, err := uc.getOrder(orderID)
	if err != nil {
		return err
	}
	if err := uc.guard(order, entity.OrderStatusSubmitted); err != nil {
		return err
	}
	order.Status = entity.OrderStatusSubmitted
	return uc.orderRepo.Update(order)
}

// Receive aplica cada línea al stock del catálogo y pasa la orden a RECEIVED.
// Las líneas que referencian ítems ya inexistentes en el catálogo se omiten.
// En modo permisivo una segunda recepción vuelve a aplicar el stock.
func (uc *OrderUseCase) Receive(orderID int) error {
	order, err := uc.getOrder(orderID)
	if err != nil {
		return err
	}
	if err := uc.guard(order, entity.OrderStatusReceived); err != nil {
		return err
	}
	now := time.Now()
	for _, itemID := range sortedLineIDs(order.Lines) {
		qty := order.Lines[itemID]
		item, err := uc.itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			continue
		}
		item.CurrentStock += qty
		item.UpdatedAt = now
		if err := uc.itemRepo.Update(item); err != nil {
			return err
		}
		if qty > 0 {
			if err := uc.journal(itemID, qty, order.ID, now); err != nil {
				return err
			}
		}
	}
	order.Status = entity.OrderStatusReceived
	return uc.orderRepo.Update(order)
}

// Cancel pasa la orden a CANCELED sin efecto sobre el stock.
func (uc *OrderUseCase) Cancel(orderID int) error {
	order, err := uc.getOrder(orderID)
	if err != nil {
		return err
	}
	if err := uc.guard(order, entity.OrderStatusCanceled); err != nil {
		return err
	}
	order.Status = entity.OrderStatusCanceled
	return uc.orderRepo.Update(order)
}

// Get devuelve la orden o ErrOrderNotFound.
func (uc *OrderUseCase) Get(orderID int) (*dto.OrderResponse, error) {
	order, err := uc.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) getOrder(orderID int) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) guard(order *entity.PurchaseOrder, to entity.OrderStatus) error {
	if uc.strict && !order.Status.CanTransitionTo(to) {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (uc *OrderUseCase) journal(itemID, qty, orderID int, date time.Time) error {
	return uc.movementRepo.Create(&entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Type:      entity.MovementTypeIN,
		Quantity:  qty,
		Reference: fmt.Sprintf("recepción orden %d", orderID),
		Date:      date,
	})
}

func sortedLineIDs(lines map[int]int) []int {
	ids := make([]int, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func toOrderResponse(order *entity.PurchaseOrder) *dto.OrderResponse {
	lines := make(map[int]int, len(order.Lines))
	for id, qty := range order.Lines {
		lines[id] = qty
	}
	return &dto.OrderResponse{
		ID:         order.ID,
		OrderDate:  order.OrderDate,
		SupplierID: order.SupplierID,
		Status:     string(order.Status),
		Lines:      lines,
	}
}
