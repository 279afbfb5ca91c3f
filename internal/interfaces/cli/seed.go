package cli

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/application/inventory"
	"github.com/jhoicas/cafe-inventario/internal/application/usecase"
)

// SeedDemoData carga el catálogo de demostración del café: tres categorías,
// dos proveedores y cinco ítems con niveles de stock variados.
func SeedDemoData(catalog *usecase.CatalogUseCase, items *inventory.ItemUseCase) error {
	food, err := catalog.AddCategory("Alimentos")
	if err != nil {
		return err
	}
	beverage, err := catalog.AddCategory("Bebidas")
	if err != nil {
		return err
	}
	supply, err := catalog.AddCategory("Insumos")
	if err != nil {
		return err
	}

	main, err := catalog.AddSupplier("Distribuidora Principal", "ventas@distprincipal.com / (555) 123-4567")
	if err != nil {
		return err
	}
	bakery, err := catalog.AddSupplier("Panadería Amanecer", "pedidos@amanecer.com / (555) 222-3456")
	if err != nil {
		return err
	}

	seedItems := []dto.AddItemRequest{
		{Name: "Café en grano (1kg)", Price: decimal.NewFromFloat(16.50), CategoryID: beverage.ID, SupplierID: main.ID, CurrentStock: 8, ReorderLevel: 5, ReorderQty: 6},
		{Name: "Leche (1L)", Price: decimal.NewFromFloat(1.20), CategoryID: beverage.ID, SupplierID: main.ID, CurrentStock: 12, ReorderLevel: 8, ReorderQty: 12},
		{Name: "Croissant", Price: decimal.NewFromFloat(2.40), CategoryID: food.ID, SupplierID: bakery.ID, CurrentStock: 6, ReorderLevel: 6, ReorderQty: 24},
		{Name: "Sobres de azúcar (caja)", Price: decimal.NewFromFloat(4.99), CategoryID: supply.ID, SupplierID: main.ID, CurrentStock: 3, ReorderLevel: 5, ReorderQty: 10},
		{Name: "Vasos (100 und)", Price: decimal.NewFromFloat(6.99), CategoryID: supply.ID, SupplierID: main.ID, CurrentStock: 15, ReorderLevel: 10, ReorderQty: 10},
	}
	for _, in := range seedItems {
		if _, err := items.AddItem(in); err != nil {
			return err
		}
	}
	return nil
}
