package dto

// CategoryResponse categoría registrada.
type CategoryResponse struct {
	ID   int
	Name string
}

// SupplierResponse proveedor registrado.
type SupplierResponse struct {
	ID          int
	Name        string
	ContactInfo string
}
