package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrStockInsuficiente: una salida o préstamo dejaría el stock negativo.
	// La operación se rechaza completa: ni movimiento ni actualización de stock.
	ErrStockInsuficiente = errors.New("stock insuficiente")

	// ErrTransicionInvalida: cambio de estado fuera de la tabla de transiciones
	// o con guarda incumplida (sin categoría, total cero, rol insuficiente).
	// Se envuelve con fmt.Errorf("%w: motivo") para conservar la causa.
	ErrTransicionInvalida = errors.New("transición de estado inválida")
)
