package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrExceedsAvailable  = errors.New("cantidad supera lo disponible")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")

	// ErrInvariantViolation indica un bug en el motor de inventario: una mutación
	// intentó dejar current_quantity fuera de [0, initial_quantity] o un status
	// inconsistente con la cantidad. Nunca debe capturarse y silenciarse.
	ErrInvariantViolation = errors.New("violación de invariante de inventario")
)
