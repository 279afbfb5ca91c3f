package entity

// Category representa una categoría de ítems del inventario.
type Category struct {
	ID   int
	Name string
}
