package reporting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/internal/domain/repository"
)

// ReportUseCase proyecciones de solo lectura para la capa de presentación.
// Cada tabla se ordena por identificador ascendente.
type ReportUseCase struct {
	itemRepo     repository.ItemRepository
	orderRepo    repository.OrderRepository
	movementRepo repository.MovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	itemRepo repository.ItemRepository,
	orderRepo repository.OrderRepository,
	movementRepo repository.MovementRepository,
) *ReportUseCase {
	return &ReportUseCase{
		itemRepo:     itemRepo,
		orderRepo:    orderRepo,
		movementRepo: movementRepo,
	}
}

// InventoryTable devuelve la tabla de inventario, una fila por ítem.
// El precio se formatea como moneda con dos decimales.
func (uc *ReportUseCase) InventoryTable() (dto.TableDTO, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return dto.TableDTO{}, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	table := dto.TableDTO{
		Header: []string{"ID", "Ítem", "Precio", "CatID", "ProvID", "Stock", "Reorden", "CantPedido"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, itemRow(item))
	}
	return table, nil
}

func itemRow(item *entity.InventoryItem) []string {
	return []string{
		strconv.Itoa(item.ID),
		item.Name,
		"$" + item.Price.StringFixed(2),
		strconv.Itoa(item.CategoryID),
		strconv.Itoa(item.SupplierID),
		strconv.Itoa(item.CurrentStock),
		strconv.Itoa(item.ReorderLevel),
		strconv.Itoa(item.ReorderQty),
	}
}

// OrdersTable devuelve la tabla de órdenes de compra, una fila por orden.
// Las líneas se proyectan como "ítem:cant" separadas por coma, ordenadas
// por ítem; una orden sin líneas muestra "-".
func (uc *ReportUseCase) OrdersTable() (dto.TableDTO, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return dto.TableDTO{}, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	table := dto.TableDTO{
		Header: []string{"OrdenID", "Fecha", "ProvID", "Estado", "Líneas (ítem:cant)"},
		Rows:   make([][]string, 0, len(orders)),
	}
	for _, order := range orders {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(order.ID),
			order.OrderDate.Format("2006-01-02"),
			strconv.Itoa(order.SupplierID),
			string(order.Status),
			formatLines(order.Lines),
		})
	}
	return table, nil
}

// MovementsTable devuelve el kárdex de movimientos en orden cronológico.
func (uc *ReportUseCase) MovementsTable() (dto.TableDTO, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return dto.TableDTO{}, err
	}
	table := dto.TableDTO{
		Header: []string{"Fecha", "ÍtemID", "Tipo", "Cantidad", "Referencia"},
		Rows:   make([][]string, 0, len(movements)),
	}
	for _, m := range movements {
		table.Rows = append(table.Rows, []string{
			m.Date.Format("2006-01-02 15:04:05"),
			strconv.Itoa(m.ItemID),
			m.Type,
			strconv.Itoa(m.Quantity),
			m.Reference,
		})
	}
	return table, nil
}

func formatLines(lines map[int]int) string {
	if len(lines) == 0 {
		return "-"
	}
	ids := make([]int, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id)+":"+strconv.Itoa(lines[id]))
	}
	return strings.Join(parts, ", ")
}
