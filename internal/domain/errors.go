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

	// Reglas de negocio.
	ErrFondosInsuficientes = errors.New("fondos insuficientes")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrCategoriaInvalida   = errors.New("categoría no válida para este tipo de movimiento")
	ErrGastoYaProcesado    = errors.New("gasto no encontrado o ya procesado")
)
