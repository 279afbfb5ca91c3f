package dto

// TableDTO tabla de celdas de texto lista para renderizar en la terminal.
type TableDTO struct {
	Header []string
	Rows   [][]string
}
