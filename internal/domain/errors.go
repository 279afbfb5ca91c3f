package domain

import (
	"errors"
	"fmt"
)

// Errores base del dominio (sin dependencias externas). Cada clase de fallo
// se discrimina con errors.Is contra estos centinelas.
var (
	ErrReference    = errors.New("referencia no válida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores específicos; envuelven su clase base para conservar la discriminación.
var (
	ErrCategoryNotExists = fmt.Errorf("la categoría no existe: %w", ErrReference)
	ErrSupplierNotExists = fmt.Errorf("el proveedor no existe: %w", ErrReference)
	ErrItemNotFound      = fmt.Errorf("ítem no encontrado: %w", ErrNotFound)
	ErrOrderNotFound     = fmt.Errorf("orden no encontrada: %w", ErrNotFound)
	ErrInvalidTransition = fmt.Errorf("transición de estado no permitida: %w", ErrConflict)
)
