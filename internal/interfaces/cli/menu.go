package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/application/inventory"
	"github.com/jhoicas/cafe-inventario/internal/application/purchasing"
	"github.com/jhoicas/cafe-inventario/internal/application/reporting"
	"github.com/jhoicas/cafe-inventario/internal/application/usecase"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/pkg/logger"
)

const menuText = `
Inventario del Café
 1) Ver inventario
 2) Agregar ítem al inventario
 3) Buscar ítems
 4) Registrar venta/consumo
 5) Agregar stock
 6) Ver ítems con stock bajo
 7) Crear orden de compra para un ítem
 8) Ver órdenes de compra
 9) Recibir una orden de compra
10) Cancelar una orden de compra
11) Agregar categoría
12) Agregar proveedor
13) Ver movimientos de stock
 0) Salir
Elija: `

// Menu bucle interactivo del sistema de inventario. Cada opción invoca un
// caso de uso; cualquier fallo del dominio se imprime y la sesión continúa.
type Menu struct {
	catalog  *usecase.CatalogUseCase
	items    *inventory.ItemUseCase
	orders   *purchasing.OrderUseCase
	reports  *reporting.ReportUseCase
	prompter *Prompter
	out      io.Writer
	log      *logger.Logger
}

// NewMenu construye el menú.
func NewMenu(
	catalog *usecase.CatalogUseCase,
	items *inventory.ItemUseCase,
	orders *purchasing.OrderUseCase,
	reports *reporting.ReportUseCase,
	prompter *Prompter,
	out io.Writer,
	log *logger.Logger,
) *Menu {
	return &Menu{
		catalog:  catalog,
		items:    items,
		orders:   orders,
		reports:  reports,
		prompter: prompter,
		out:      out,
		log:      log,
	}
}

// Run ejecuta el bucle hasta la opción de salida o el fin de la entrada.
// Siempre termina limpiamente.
func (m *Menu) Run() {
	for {
		choice, err := m.prompter.Line(menuText)
		if err != nil {
			// EOF o entrada cerrada: salida limpia
			fmt.Fprintln(m.out)
			return
		}
		if choice == "0" {
			fmt.Fprintln(m.out, "¡Hasta luego!")
			return
		}

		m.log.Debug().Str("opcion", choice).Msg("opción seleccionada")
		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out)
				return
			}
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.viewInventory()
	case "2":
		return m.addItem()
	case "3":
		return m.searchItems()
	case "4":
		return m.consumeStock()
	case "5":
		return m.addStock()
	case "6":
		return m.lowStock()
	case "7":
		return m.quickOrder()
	case "8":
		return m.viewOrders()
	case "9":
		return m.receiveOrder()
	case "10":
		return m.cancelOrder()
	case "11":
		return m.addCategory()
	case "12":
		return m.addSupplier()
	case "13":
		return m.viewMovements()
	default:
		fmt.Fprintln(m.out, "Opción no válida. Intente de nuevo.")
		return nil
	}
}

func (m *Menu) viewInventory() error {
	table, err := m.reports.InventoryTable()
	if err != nil {
		return err
	}
	Render(m.out, table)
	return nil
}

func (m *Menu) addItem() error {
	name, err := m.prompter.Line("Nombre del ítem: ")
	if err != nil {
		return err
	}
	price, err := m.prompter.Decimal("Precio: ")
	if err != nil {
		return err
	}

	categories, err := m.catalog.ListCategories()
	if err != nil {
		return err
	}
	Render(m.out, categoriesTable(categories))
	categoryID, err := m.prompter.Int("ID de categoría: ")
	if err != nil {
		return err
	}

	suppliers, err := m.catalog.ListSuppliers()
	if err != nil {
		return err
	}
	Render(m.out, suppliersTable(suppliers))
	supplierID, err := m.prompter.Int("ID de proveedor: ")
	if err != nil {
		return err
	}

	stock, err := m.prompter.IntDefault("Stock inicial (por defecto 0): ", 0)
	if err != nil {
		return err
	}
	level, err := m.prompter.IntDefault(
		fmt.Sprintf("Umbral de reorden (por defecto %d): ", entity.DefaultReorderLevel),
		entity.DefaultReorderLevel,
	)
	if err != nil {
		return err
	}
	qty, err := m.prompter.IntDefault(
		fmt.Sprintf("Cantidad de reorden (por defecto %d): ", entity.DefaultReorderQty),
		entity.DefaultReorderQty,
	)
	if err != nil {
		return err
	}

	item, err := m.items.AddItem(dto.AddItemRequest{
		Name:         name,
		Price:        price,
		CategoryID:   categoryID,
		SupplierID:   supplierID,
		CurrentStock: stock,
		ReorderLevel: level,
		ReorderQty:   qty,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Ítem %d agregado - %s\n", item.ID, item.Name)
	return nil
}

func (m *Menu) searchItems() error {
	keyword, err := m.prompter.Line("Palabra a buscar: ")
	if err != nil {
		return err
	}
	results, err := m.items.SearchItems(keyword)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(m.out, "Sin coincidencias.")
		return nil
	}
	Render(m.out, itemsTable(results))
	return nil
}

func (m *Menu) consumeStock() error {
	itemID, err := m.prompter.Int("ID del ítem a consumir: ")
	if err != nil {
		return err
	}
	qty, err := m.prompter.Int("Cantidad vendida/usada: ")
	if err != nil {
		return err
	}
	ok, err := m.items.ConsumeStock(itemID, qty)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(m.out, "Stock actualizado.")
		return nil
	}
	available := 0
	if item, err := m.items.GetItem(itemID); err == nil {
		available = item.CurrentStock
	}
	fmt.Fprintf(m.out, "Stock insuficiente. Disponible: %d\n", available)
	return nil
}

func (m *Menu) addStock() error {
	itemID, err := m.prompter.Int("ID del ítem a surtir: ")
	if err != nil {
		return err
	}
	qty, err := m.prompter.Int("Cantidad recibida: ")
	if err != nil {
		return err
	}
	if err := m.items.AddStock(itemID, qty); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Stock actualizado.")
	return nil
}

func (m *Menu) lowStock() error {
	low, err := m.items.LowStockItems()
	if err != nil {
		return err
	}
	if len(low) == 0 {
		fmt.Fprintln(m.out, "Todos los ítems están por encima de su umbral.")
		return nil
	}
	fmt.Fprintln(m.out, "Ítems con stock bajo:")
	Render(m.out, lowStockTable(low))

	answer, err := m.prompter.Line("¿Crear órdenes para todos los ítems bajos? (s/N): ")
	if err != nil {
		return err
	}
	if answer != "s" && answer != "S" {
		return nil
	}
	created := 0
	for _, item := range low {
		order, err := m.orders.CreateForItem(item.ID, nil)
		if err != nil {
			return err
		}
		if err := m.orders.Submit(order.ID); err != nil {
			return err
		}
		created++
	}
	fmt.Fprintf(m.out, "Se crearon y enviaron %d órdenes de compra.\n", created)
	return nil
}

func (m *Menu) quickOrder() error {
	itemID, err := m.prompter.Int("ID del ítem a ordenar: ")
	if err != nil {
		return err
	}
	qty, err := m.prompter.OptionalInt("Cantidad (en blanco = cantidad de reorden): ")
	if err != nil {
		return err
	}
	order, err := m.orders.CreateForItem(itemID, qty)
	if err != nil {
		return err
	}
	if err := m.orders.Submit(order.ID); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Orden %d creada y enviada.\n", order.ID)
	return nil
}

func (m *Menu) viewOrders() error {
	table, err := m.reports.OrdersTable()
	if err != nil {
		return err
	}
	Render(m.out, table)
	return nil
}

func (m *Menu) receiveOrder() error {
	orderID, err := m.prompter.Int("ID de la orden a recibir: ")
	if err != nil {
		return err
	}
	if err := m.orders.Receive(orderID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Orden recibida y stock actualizado.")
	return nil
}

func (m *Menu) cancelOrder() error {
	orderID, err := m.prompter.Int("ID de la orden a cancelar: ")
	if err != nil {
		return err
	}
	if err := m.orders.Cancel(orderID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Orden cancelada.")
	return nil
}

func (m *Menu) addCategory() error {
	name, err := m.prompter.Line("Nombre de la categoría: ")
	if err != nil {
		return err
	}
	category, err := m.catalog.AddCategory(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Categoría %d agregada - %s\n", category.ID, category.Name)
	return nil
}

func (m *Menu) addSupplier() error {
	name, err := m.prompter.Line("Nombre del proveedor: ")
	if err != nil {
		return err
	}
	contact, err := m.prompter.Line("Información de contacto: ")
	if err != nil {
		return err
	}
	supplier, err := m.catalog.AddSupplier(name, contact)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Proveedor %d agregado - %s\n", supplier.ID, supplier.Name)
	return nil
}

func (m *Menu) viewMovements() error {
	table, err := m.reports.MovementsTable()
	if err != nil {
		return err
	}
	Render(m.out, table)
	return nil
}

// Tablas auxiliares construidas desde DTOs (concernencia de presentación).

func categoriesTable(categories []dto.CategoryResponse) dto.TableDTO {
	table := dto.TableDTO{Header: []string{"ID", "Categoría"}}
	for _, c := range categories {
		table.Rows = append(table.Rows, []string{strconv.Itoa(c.ID), c.Name})
	}
	return table
}

func suppliersTable(suppliers []dto.SupplierResponse) dto.TableDTO {
	table := dto.TableDTO{Header: []string{"ID", "Proveedor"}}
	for _, s := range suppliers {
		table.Rows = append(table.Rows, []string{strconv.Itoa(s.ID), s.Name})
	}
	return table
}

func itemsTable(items []dto.ItemResponse) dto.TableDTO {
	table := dto.TableDTO{
		Header: []string{"ID", "Ítem", "Precio", "CatID", "ProvID", "Stock", "Reorden", "CantPedido"},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(it.ID),
			it.Name,
			"$" + it.Price.StringFixed(2),
			strconv.Itoa(it.CategoryID),
			strconv.Itoa(it.SupplierID),
			strconv.Itoa(it.CurrentStock),
			strconv.Itoa(it.ReorderLevel),
			strconv.Itoa(it.ReorderQty),
		})
	}
	return table
}

func lowStockTable(items []dto.ItemResponse) dto.TableDTO {
	table := dto.TableDTO{
		Header: []string{"ID", "Ítem", "Stock", "Umbral", "CantPedido"},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(it.ID),
			it.Name,
			strconv.Itoa(it.CurrentStock),
			strconv.Itoa(it.ReorderLevel),
			strconv.Itoa(it.ReorderQty),
		})
	}
	return table
}
