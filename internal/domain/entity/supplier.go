package entity

// Supplier representa un proveedor del café.
type Supplier struct {
	ID          int
	Name        string
	ContactInfo string
}
