package usecase

import (
	"github.com/jhoicas/cafe-inventario/internal/application/dto"
	"github.com/jhoicas/cafe-inventario/internal/domain/entity"
	"github.com/jhoicas/cafe-inventario/internal/domain/repository"
)

// CatalogUseCase altas y listados de categorías y proveedores.
// Ninguna de las dos entidades se actualiza ni elimina.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// AddCategory registra una categoría. El nombre no es único; siempre tiene éxito.
func (uc *CatalogUseCase) AddCategory(name string) (*dto.CategoryResponse, error) {
	category := &entity.Category{ID: uc.categoryRepo.NextID(), Name: name}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// AddSupplier registra un proveedor con su información de contacto.
func (uc *CatalogUseCase) AddSupplier(name, contactInfo string) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		ID:          uc.supplierRepo.NextID(),
		Name:        name,
		ContactInfo: contactInfo,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:          supplier.ID,
		Name:        supplier.Name,
		ContactInfo: supplier.ContactInfo,
	}, nil
}

// ListCategories devuelve las categorías en orden de alta.
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListSuppliers devuelve los proveedores en orden de alta.
func (uc *CatalogUseCase) ListSuppliers() ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name, ContactInfo: s.ContactInfo})
	}
	return out, nil
}
