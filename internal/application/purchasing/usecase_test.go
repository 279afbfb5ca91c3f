package purchasing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/application/inventory"
	"github.com/jhoicas/cafe-inventario/internal/application/purchasing"
	"github.com/jhoicas/cafe-inventario/internal/application/usecase"
	"github.com/jhoicas/cafe-inventario/internal/domain"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	catalog  *usecase.CatalogUseCase
	items    *inventory.ItemUseCase
	orders   *purchasing.OrderUseCase
	supplier *dto.SupplierResponse
	category *dto.CategoryResponse
}

// setup construye el sistema completo en memoria. strict activa la guarda
// de transiciones de estado de las órdenes.
func setup(t *testing.T, strict bool) *fixture {
	t.Helper()
	categoryRepo := memory.NewCategoryRepository()
	supplierRepo := memory.NewSupplierRepository()
	itemRepo := memory.NewItemRepository()
	orderRepo := memory.NewOrderRepository()
	movementRepo := memory.NewMovementRepository()

	catalog := usecase.NewCatalogUseCase(categoryRepo, supplierRepo)
	items := inventory.NewItemUseCase(itemRepo, categoryRepo, supplierRepo, movementRepo)
	orders := purchasing.NewOrderUseCase(orderRepo, supplierRepo, itemRepo, movementRepo, strict)

	category, err := catalog.AddCategory("Bebidas")
	require.NoError(t, err)
	supplier, err := catalog.AddSupplier("Distribuidora Principal", "ventas@distprincipal.com")
	require.NoError(t, err)

	return &fixture{
		catalog:  catalog,
		items:    items,
		orders:   orders,
		supplier: supplier,
		category: category,
	}
}

func (f *fixture) addItem(t *testing.T, name string, stock, level, reorderQty int) *dto.ItemResponse {
	t.Helper()
	item, err := f.items.AddItem(dto.AddItemRequest{
		Name:         name,
		Price:        decimal.NewFromFloat(1.20),
		CategoryID:   f.category.ID,
		SupplierID:   f.supplier.ID,
		CurrentStock: stock,
		ReorderLevel: level,
		ReorderQty:   reorderQty,
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) stockOf(t *testing.T, itemID int) int {
	t.Helper()
	item, err := f.items.GetItem(itemID)
	require.NoError(t, err)
	return item.CurrentStock
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y líneas
// ──────────────────────────────────────────────────────────────────────────────

// Las órdenes arrancan en 5001, abiertas y sin líneas.
func TestCreate_OrdenAbiertaVacia(t *testing.T) {
	f := setup(t, false)

	order, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)

	assert.Equal(t, 5001, order.ID)
	assert.Equal(t, string(entity.OrderStatusOpen), order.Status)
	assert.Empty(t, order.Lines)
	assert.Equal(t, f.supplier.ID, order.SupplierID)
	assert.False(t, order.OrderDate.IsZero())

	second, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)
	assert.Greater(t, second.ID, order.ID)
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	f := setup(t, false)

	_, err := f.orders.Create(999)

	assert.ErrorIs(t, err, domain.ErrReference)
}

// Una línea repetida acumula la cantidad en lugar de sobrescribirla.
func TestAddLine_Acumula(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)
	order, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)

	require.NoError(t, f.orders.AddLine(order.ID, item.ID, 5))
	require.NoError(t, f.orders.AddLine(order.ID, item.ID, 3))
	require.NoError(t, f.orders.AddLine(order.ID, item.ID, -4)) // negativo cuenta como 0

	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{item.ID: 8}, got.Lines)
}

func TestAddLine_OrdenInexistente(t *testing.T) {
	f := setup(t, false)

	err := f.orders.AddLine(9999, 1001, 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// CreateForItem usa el proveedor del ítem y su cantidad de reorden por defecto.
func TestCreateForItem_CantidadPorDefecto(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Croissant", 6, 6, 24)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, f.supplier.ID, order.SupplierID)
	assert.Equal(t, map[int]int{item.ID: 24}, order.Lines)
	assert.Equal(t, string(entity.OrderStatusOpen), order.Status)
}

func TestCreateForItem_CantidadExplicita(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Croissant", 6, 6, 24)

	qty := 7
	order, err := f.orders.CreateForItem(item.ID, &qty)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{item.ID: 7}, order.Lines)
}

func TestCreateForItem_ItemInexistente(t *testing.T) {
	f := setup(t, false)

	_, err := f.orders.CreateForItem(9999, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_PasaASubmitted(t *testing.T) {
	f := setup(t, false)
	order, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)

	require.NoError(t, f.orders.Submit(order.ID))

	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusSubmitted), got.Status)
}

func TestSubmit_OrdenInexistente(t *testing.T) {
	f := setup(t, false)

	assert.ErrorIs(t, f.orders.Submit(9999), domain.ErrNotFound)
}

// Recibir una orden con líneas {A:5, B:3} suma 5 al stock de A y 3 al de B.
func TestReceive_AplicaLineas(t *testing.T) {
	f := setup(t, false)
	itemA := f.addItem(t, "Leche (1L)", 12, 8, 12)
	itemB := f.addItem(t, "Croissant", 6, 6, 24)

	order, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)
	require.NoError(t, f.orders.AddLine(order.ID, itemA.ID, 5))
	require.NoError(t, f.orders.AddLine(order.ID, itemB.ID, 3))
	require.NoError(t, f.orders.Submit(order.ID))

	require.NoError(t, f.orders.Receive(order.ID))

	assert.Equal(t, 17, f.stockOf(t, itemA.ID))
	assert.Equal(t, 9, f.stockOf(t, itemB.ID))

	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusReceived), got.Status)
}

// En modo permisivo, recibir dos veces vuelve a aplicar el stock
// (comportamiento histórico, reproducible y no idempotente).
func TestReceive_DobleAplicacionPermisiva(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.orders.Submit(order.ID))

	require.NoError(t, f.orders.Receive(order.ID))
	require.NoError(t, f.orders.Receive(order.ID))

	assert.Equal(t, 12+12+12, f.stockOf(t, item.ID))
}

// Las líneas que referencian ítems inexistentes en el catálogo se omiten.
func TestReceive_OmiteItemsDesconocidos(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.Create(f.supplier.ID)
	require.NoError(t, err)
	require.NoError(t, f.orders.AddLine(order.ID, item.ID, 5))
	require.NoError(t, f.orders.AddLine(order.ID, 9999, 7))

	require.NoError(t, f.orders.Receive(order.ID))

	assert.Equal(t, 17, f.stockOf(t, item.ID))
	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusReceived), got.Status)
}

func TestReceive_OrdenInexistente(t *testing.T) {
	f := setup(t, false)

	assert.ErrorIs(t, f.orders.Receive(9999), domain.ErrNotFound)
}

// Cancelar no toca el stock.
func TestCancel_SinEfectoEnStock(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.orders.Cancel(order.ID))

	assert.Equal(t, 12, f.stockOf(t, item.ID))
	got, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCanceled), got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guarda de transiciones (modo estricto)
// ──────────────────────────────────────────────────────────────────────────────

func TestStrict_RecibirOrdenAbierta(t *testing.T) {
	f := setup(t, true)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)

	// OPEN -> RECEIVED no está en la tabla: primero hay que enviarla.
	err = f.orders.Receive(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 12, f.stockOf(t, item.ID), "una transición rechazada no aplica stock")
}

func TestStrict_RecibirDosVeces(t *testing.T) {
	f := setup(t, true)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.orders.Submit(order.ID))
	require.NoError(t, f.orders.Receive(order.ID))

	err = f.orders.Receive(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 24, f.stockOf(t, item.ID), "la segunda recepción no debe duplicar el stock")
}

func TestStrict_RecibirOrdenCancelada(t *testing.T) {
	f := setup(t, true)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.orders.Cancel(order.ID))

	err = f.orders.Receive(order.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 12, f.stockOf(t, item.ID))
}

// En modo permisivo la misma secuencia sí aplica el stock.
func TestPermisivo_RecibirOrdenCancelada(t *testing.T) {
	f := setup(t, false)
	item := f.addItem(t, "Leche (1L)", 12, 8, 12)

	order, err := f.orders.CreateForItem(item.ID, nil)
	require.NoError(t, err)
	require.NoError(t, f.orders.Cancel(order.ID))

	require.NoError(t, f.orders.Receive(order.ID))
	assert.Equal(t, 24, f.stockOf(t, item.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo del café
// ──────────────────────────────────────────────────────────────────────────────

// Alta de "Leche", venta, detección de stock bajo, orden rápida y recepción.
func TestEscenarioCafe(t *testing.T) {
	f := setup(t, false)

	milk, err := f.items.AddItem(dto.AddItemRequest{
		Name:         "Leche (1L)",
		Price:        decimal.NewFromFloat(1.20),
		CategoryID:   f.category.ID,
		SupplierID:   f.supplier.ID,
		CurrentStock: 12,
		ReorderLevel: 8,
		ReorderQty:   12,
	})
	require.NoError(t, err)
	require.Equal(t, 1001, milk.ID)

	ok, err := f.items.ConsumeStock(milk.ID, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, f.stockOf(t, milk.ID))

	low, err := f.items.LowStockItems()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, milk.ID, low[0].ID, "7 <= 8 deja al ítem bajo su umbral")

	order, err := f.orders.CreateForItem(milk.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{milk.ID: 12}, order.Lines)

	require.NoError(t, f.orders.Submit(order.ID))
	require.NoError(t, f.orders.Receive(order.ID))
	assert.Equal(t, 19, f.stockOf(t, milk.ID))
}
