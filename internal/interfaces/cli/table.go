package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/cafe-inventario/internal/application/dto"
)

// Render escribe la tabla con columnas alineadas, separadas por " | ", y
// una línea divisoria bajo la cabecera. Sin filas ni cabecera imprime un
// marcador de vacío.
func Render(w io.Writer, table dto.TableDTO) {
	if len(table.Header) == 0 && len(table.Rows) == 0 {
		fmt.Fprintln(w, "(sin datos)")
		return
	}

	widths := columnWidths(table)
	if len(table.Header) > 0 {
		fmt.Fprintln(w, formatRow(table.Header, widths))
		fmt.Fprintln(w, separator(widths))
	}
	for _, row := range table.Rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

func columnWidths(table dto.TableDTO) []int {
	widths := make([]int, len(table.Header))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	measure(table.Header)
	for _, row := range table.Rows {
		measure(row)
	}
	return widths
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		pad := widths[i] - utf8.RuneCountInString(cell)
		cells[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(cells, " | "), " ")
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "-+-")
}
