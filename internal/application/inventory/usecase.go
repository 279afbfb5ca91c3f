package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/internal/domain/repository"
)

// ItemUseCase catálogo de ítems y operaciones de stock. Cada mutación de
// stock queda registrada en el kárdex de movimientos.
type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	movementRepo repository.MovementRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	movementRepo repository.MovementRepository,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		movementRepo: movementRepo,
	}
}

// AddItem da de alta un ítem. Falla si la categoría o el proveedor no
// existen; no se inserta nada ante un fallo. Stock y umbral de reorden se
// ajustan a >= 0, la cantidad de reorden a >= 1.
func (uc *ItemUseCase) AddItem(in dto.AddItemRequest) (*dto.ItemResponse, error) {
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil || category == nil {
		return nil, domain.ErrCategoryNotExists
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrSupplierNotExists
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uc.itemRepo.NextID(),
		Name:         in.Name,
		Price:        in.Price,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		CurrentStock: clampMin(in.CurrentStock, 0),
		ReorderLevel: clampMin(in.ReorderLevel, 0),
		ReorderQty:   clampMin(in.ReorderQty, 1),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	if item.CurrentStock > 0 {
		if err := uc.journal(item.ID, entity.MovementTypeIN, item.CurrentStock, "stock inicial", now); err != nil {
			return nil, err
		}
	}
	return toItemResponse(item), nil
}

// SearchItems busca por subcadena del nombre, sin distinguir mayúsculas.
// Devuelve los ítems en orden de alta.
func (uc *ItemUseCase) SearchItems(keyword string) ([]dto.ItemResponse, error) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	list, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0)
	for _, item := range list {
		if strings.Contains(strings.ToLower(item.Name), k) {
			out = append(out, *toItemResponse(item))
		}
	}
	return out, nil
}

// GetItem devuelve el ítem o ErrItemNotFound.
func (uc *ItemUseCase) GetItem(itemID int) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// AddStock suma qty unidades al stock del ítem (qty negativo cuenta como 0).
func (uc *ItemUseCase) AddStock(itemID, qty int) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	qty = clampMin(qty, 0)
	now := time.Now()
	item.CurrentStock += qty
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return err
	}
	if qty > 0 {
		return uc.journal(item.ID, entity.MovementTypeIN, qty, "entrada de stock", now)
	}
	return nil
}

// ConsumeStock descuenta qty unidades si hay stock suficiente. Devuelve
// true si el consumo se aplicó; false, sin cambio alguno, si no alcanza.
// El consumo es todo o nada: nunca deja stock negativo.
func (uc *ItemUseCase) ConsumeStock(itemID, qty int) (bool, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, domain.ErrItemNotFound
	}
	qty = clampMin(qty, 0)
	if item.CurrentStock < qty {
		return false, nil
	}
	now := time.Now()
	item.CurrentStock -= qty
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return false, err
	}
	if qty > 0 {
		if err := uc.journal(item.ID, entity.MovementTypeOUT, qty, "venta/consumo", now); err != nil {
			return false, err
		}
	}
	return true, nil
}

// LowStockItems devuelve los ítems con stock en o por debajo de su umbral
// de reorden, en orden de alta.
func (uc *ItemUseCase) LowStockItems() ([]dto.ItemResponse, error) {
	list, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0)
	for _, item := range list {
		if item.IsLowStock() {
			out = append(out, *toItemResponse(item))
		}
	}
	return out, nil
}

func (uc *ItemUseCase) journal(itemID int, movType string, qty int, reference string, date time.Time) error {
	return uc.movementRepo.Create(&entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Type:      movType,
		Quantity:  qty,
		Reference: reference,
		Date:      date,
	})
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func toItemResponse(item *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		CategoryID:   item.CategoryID,
		SupplierID:   item.SupplierID,
		CurrentStock: item.CurrentStock,
		ReorderLevel: item.ReorderLevel,
		ReorderQty:   item.ReorderQty,
		UpdatedAt:    item.UpdatedAt,
	}
}
